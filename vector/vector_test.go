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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyVector(t *testing.T) {
	v := New[int]()
	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Count())
	_, ok := v.Get(0)
	assert.False(t, ok)
	assert.Nil(t, v.Iterator())
	assert.Empty(t, v.Tail())
}

func TestPushGetPreservesOrder(t *testing.T) {
	v := New[int]()
	for i := 0; i < 100; i++ {
		v = v.Push(i)
	}
	require.Equal(t, 100, v.Count())
	for i := 0; i < 100; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := v.Get(100)
	assert.False(t, ok)
}

func TestPushIsPersistent(t *testing.T) {
	v1 := Of(1, 2, 3)
	v2 := v1.Push(4)

	assert.Equal(t, 3, v1.Count())
	assert.Equal(t, 4, v2.Count())

	_, ok := v1.Get(3)
	assert.False(t, ok, "earlier Vector must not observe an element pushed onto a derived Vector")
}

func TestSetReturnsNewVectorLeavingOriginalUntouched(t *testing.T) {
	v1 := Of(10, 20, 30)
	v2 := v1.Set(1, 99)

	got1, _ := v1.Get(1)
	got2, _ := v2.Get(1)
	assert.Equal(t, 20, got1)
	assert.Equal(t, 99, got2)
}

func TestSetOutOfRangeReturnsReceiverUnchanged(t *testing.T) {
	v := Of(1, 2, 3)
	assert.True(t, v == v.Set(3, 99), "Set past the end must return v unchanged")
	assert.True(t, v == v.Set(-1, 99), "Set at a negative index must return v unchanged")
}

func TestPopRemovesLastElement(t *testing.T) {
	v := Of(1, 2, 3)
	v2 := v.Pop()

	require.Equal(t, 2, v2.Count())
	got, ok := v2.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = v2.Get(2)
	assert.False(t, ok)

	// original untouched
	assert.Equal(t, 3, v.Count())
}

func TestPopOnEmptyVectorReturnsReceiverUnchanged(t *testing.T) {
	v := New[int]()
	assert.True(t, v == v.Pop(), "Pop on an empty Vector must return v unchanged")
}

func TestPopDownToEmpty(t *testing.T) {
	v := Of(1)
	v = v.Pop()
	assert.True(t, v.Empty())
}

// TestPushPopRoundTripAcrossBoundaries exercises growth and collapse
// through the 32/1024/32768 boundaries spec.md calls out: pushing n
// elements then popping all of them back off must restore every
// intermediate size exactly, and the tail buffer must never exceed 32
// live elements.
func TestPushPopRoundTripAcrossBoundaries(t *testing.T) {
	const n = 32768
	v := New[int]()
	for i := 0; i < n; i++ {
		v = v.Push(i)
		assert.LessOrEqual(t, len(v.Tail()), nodeWidth)
	}
	require.Equal(t, n, v.Count())

	for _, i := range []int{0, 31, 32, 1023, 1024, 32767} {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	for i := n - 1; i >= 0; i-- {
		got, ok := v.Get(i)
		require.True(t, ok)
		require.Equal(t, i, got)
		v = v.Pop()
		require.Equal(t, i, v.Count())
	}
	assert.True(t, v.Empty())
}

func TestTailReflectsUnflushedElements(t *testing.T) {
	v := New[int]()
	for i := 0; i < 10; i++ {
		v = v.Push(i)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Tail())

	for i := 10; i < nodeWidth; i++ {
		v = v.Push(i)
	}
	assert.Len(t, v.Tail(), nodeWidth)

	v = v.Push(nodeWidth)
	assert.Equal(t, []int{nodeWidth}, v.Tail(), "tail must reset to one element once the previous tail is folded into the trie")
}

func TestVisitCoversAllElementsInOrder(t *testing.T) {
	v := Of(5, 6, 7, 8)
	var got []int
	v.Visit(func(i, val int) { got = append(got, val) })
	assert.Equal(t, []int{5, 6, 7, 8}, got)
}

func TestIteratorMatchesVisit(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	var got []int
	for it := v.Iterator(); !it.Done(); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}
