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

// Package iterator is the lazy-sequence abstraction shared by hamt and
// vector. An Iterator bundles a current value with a step function that
// produces the next Iterator; a nil *Iterator is the terminal indicator,
// so "iterating an empty collection" and "stepping off the end" both
// collapse to the same nil value a caller can compare against.
package iterator

import "github.com/probeum/persistent/internal/pcommon"

// Iterator is an immutable cursor over a sequence of values of type T.
// Stepping never mutates the receiver: a caller holding an *Iterator[T]
// retains that exact position even after calling Next, because Next
// returns a brand new *Iterator[T] rather than advancing in place.
type Iterator[T any] struct {
	value T
	next  func() *Iterator[T]
}

// New builds an Iterator positioned at value, where next is called on
// each Next to compute the following position (or nil, at the end).
func New[T any](value T, next func() *Iterator[T]) *Iterator[T] {
	return &Iterator[T]{value: value, next: next}
}

// Value returns the element the iterator currently points at. Calling
// Value on a nil *Iterator is a programming error: the caller should have
// checked for the terminal indicator (nil) first.
func (it *Iterator[T]) Value() T {
	if it == nil {
		panic(pcommon.ErrIteratorExhausted)
	}
	return it.value
}

// Next returns a fresh Iterator advanced by one position, or nil once the
// underlying sequence is exhausted. Calling Next on a nil *Iterator is a
// programming error, same as Value.
func (it *Iterator[T]) Next() *Iterator[T] {
	if it == nil {
		panic(pcommon.ErrIteratorExhausted)
	}
	return it.next()
}

// Done reports whether it is the terminal indicator. Provided so callers
// can write `for it := c.Iterator(); !it.Done(); it = it.Next()` without
// a separate nil check, since a nil receiver is itself valid to call Done
// on (unlike Value/Next).
func (it *Iterator[T]) Done() bool {
	return it == nil
}

// Collect drains it into a slice, in iteration order. A nil it yields an
// empty, non-nil slice.
func Collect[T any](it *Iterator[T]) []T {
	out := []T{}
	for !it.Done() {
		out = append(out, it.Value())
		it = it.Next()
	}
	return out
}
