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

package memohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeum/persistent/hamt"
)

func TestWrapCachesResults(t *testing.T) {
	calls := 0
	expensive := func(key string) uint64 {
		calls++
		return hamt.DefaultHash(key)
	}

	memo := Wrap(expensive, 16)

	h1 := memo("a")
	h2 := memo("a")
	h3 := memo("b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 2, calls, "repeat key must not recompute the underlying hash")
}

func TestWrapIsUsableAsAMapHashFunc(t *testing.T) {
	memo := Wrap(hamt.DefaultHash, 64)
	m := hamt.New[string, int](memo, func(a, b string) bool { return a == b }, func(a, b int) bool { return a == b })

	m = m.Assoc("x", 1).Assoc("y", 2)
	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestWrapPanicsOnNonPositiveSize(t *testing.T) {
	assert.Panics(t, func() { Wrap(hamt.DefaultHash, 0) })
}
