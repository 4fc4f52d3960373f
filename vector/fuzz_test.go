// Copyright 2020 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package vector

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

// TestPushSetPopAgainstReferenceSlice drives Vector through a randomized
// script of push/set/pop operations in lockstep with a plain Go slice,
// the reference model asserting the trie-plus-tail encoding never
// diverges from straightforward sequence semantics.
func TestPushSetPopAgainstReferenceSlice(t *testing.T) {
	f := fuzz.New().NilChance(0)

	var script []struct {
		Op  uint8 // 0 push, 1 set, 2 pop
		Val int
	}
	f.NumElements(500, 3000).Fuzz(&script)

	v := New[int]()
	var ref []int

	for _, step := range script {
		switch step.Op % 3 {
		case 0:
			v = v.Push(step.Val)
			ref = append(ref, step.Val)
		case 1:
			if len(ref) == 0 {
				continue
			}
			idx := int(uint(step.Val) % uint(len(ref)))
			v = v.Set(idx, step.Val)
			ref[idx] = step.Val
		case 2:
			if len(ref) == 0 {
				continue
			}
			v = v.Pop()
			ref = ref[:len(ref)-1]
		}

		require.Equal(t, len(ref), v.Count())
	}

	got := make([]int, v.Count())
	v.Visit(func(i, val int) { got[i] = val })

	if diff := pretty.Compare(ref, got); diff != "" {
		t.Fatalf("vector diverged from reference slice after %d ops:\n%s", len(script), diff)
	}
}
