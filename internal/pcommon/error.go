// Copyright 2014 The go-probeum Authors
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

// Package pcommon holds error sentinels and small helpers shared by hamt,
// vector and iterator, in the same spirit as the teacher's own "common"
// package of shared error values.
package pcommon

import "errors"

// ErrIteratorExhausted backs the panic when Value or Next is called on a
// terminal (nil) iterator. Out-of-range Vector/Map access has no sentinel
// of its own: Get reports absence via (zero, false) and Set/Pop/Dissoc
// report it by returning the receiver unchanged, per the library's
// error-handling design.
var ErrIteratorExhausted = errors.New("persistent: iterator exhausted")

// ByteSliceEqual reports whether two byte slices hold identical bytes.
// Mirrors the teacher's common.ByteSliceEqual helper.
func ByteSliceEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
