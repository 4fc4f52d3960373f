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

// Package conslist is the minimal cons-list building block spec'd as a
// supporting structure for iterator construction: hamt.Map snapshots its
// entries into one of these during a single visit pass, then steps an
// iterator.Iterator across it. It is not a user-facing collection.
package conslist

// List is a singly-linked, immutable cons cell. A nil *List is the empty
// list (spec: "an empty list is NULL").
type List[T any] struct {
	data T
	next *List[T]
}

// Cons returns a new list with val prepended to lst.
func Cons[T any](lst *List[T], val T) *List[T] {
	return &List[T]{data: val, next: lst}
}

// Head returns the value at the front of the list. Calling Head on an
// empty (nil) list is a programming error.
func (lst *List[T]) Head() T {
	return lst.data
}

// Tail returns the list with the head removed (nil once exhausted).
func (lst *List[T]) Tail() *List[T] {
	return lst.next
}

// Empty reports whether lst is the empty list.
func (lst *List[T]) Empty() bool {
	return lst == nil
}

// Count walks lst and returns its length.
func (lst *List[T]) Count() int {
	n := 0
	for ; lst != nil; lst = lst.next {
		n++
	}
	return n
}
