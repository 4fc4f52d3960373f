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
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadersSeeAStableVector mirrors hamt's concurrency test:
// many goroutines read one shared Vector while others derive and discard
// new Vectors from it, with no lock protecting any of it.
func TestConcurrentReadersSeeAStableVector(t *testing.T) {
	shared := New[int]()
	for i := 0; i < 600; i++ {
		shared = shared.Push(i)
	}

	g, _ := errgroup.WithContext(context.Background())

	for r := 0; r < 16; r++ {
		g.Go(func() error {
			for i := 0; i < 600; i++ {
				v, ok := shared.Get(i)
				if !ok || v != i {
					return fmt.Errorf("reader saw inconsistent element at %d: %d, %v", i, v, ok)
				}
			}
			return nil
		})
	}

	for w := 0; w < 8; w++ {
		g.Go(func() error {
			derived := shared.Push(-1).Pop()
			if derived.Count() != shared.Count() {
				return fmt.Errorf("derived vector count drifted: %d vs %d", derived.Count(), shared.Count())
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	require.Equal(t, 600, shared.Count())
}
