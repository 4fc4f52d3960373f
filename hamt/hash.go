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

package hamt

import "github.com/probeum/persistent/internal/pcommon"

// HashFunc computes a full hash for a key. Implementations may return any
// width up to 64 bits; wider hashes only extend how many levels the trie
// can descend before two distinct keys are forced into a collision chain
// (5 bits consumed per level, so a 64-bit hash supports 13 levels before
// exhaustion versus 7 for the original 32-bit hash).
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether a and b should be treated as the same key (or
// the same value, when used for val equality).
type EqualFunc[T any] func(a, b T) bool

// DefaultHash is the DJB2 byte-hash from spec: h starts at 5381, and each
// byte folds in as h = h*33 + c, with unsigned wraparound. It is carried
// in a uint64 accumulator, but truncating to the low 32 bits reproduces
// the original 32-bit DJB2 exactly, since multiplication and addition
// wrap consistently at either width.
func DefaultHash(key string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

// DefaultEqual is byte-sequence equality, the spec's default key/value
// equality function.
func DefaultEqual[T ~string | ~[]byte](a, b T) bool {
	as, bs := string(a), string(b)
	return as == bs
}

func defaultStringEqual(a, b string) bool { return a == b }

// bytesEqual adapts the pcommon helper to EqualFunc[[]byte] for
// slice-typed keys or values; no constructor in this package installs it.
func bytesEqual(a, b []byte) bool { return pcommon.ByteSliceEqual(a, b) }
