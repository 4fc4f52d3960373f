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

// Package memohash wraps an expensive hamt.HashFunc with an LRU cache, the
// way the wider go-probeum/go-ethereum stack leans on hashicorp/golang-lru
// throughout to avoid recomputing costly derived values. It is a purely
// optional adjunct: a Map built with a memoized HashFunc behaves exactly
// like one built with the unwrapped function, just faster on repeat keys.
package memohash

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/probeum/persistent/hamt"
)

// Wrap returns a hamt.HashFunc[K] that memoizes up to size recent results
// of fn behind an LRU cache. K must be comparable, since it becomes the
// cache key. size must be positive.
func Wrap[K comparable](fn hamt.HashFunc[K], size int) hamt.HashFunc[K] {
	cache, err := lru.New(size)
	if err != nil {
		// Only returned by golang-lru when size <= 0, a caller bug.
		panic(err)
	}

	return func(key K) uint64 {
		if v, ok := cache.Get(key); ok {
			return v.(uint64)
		}
		h := fn(key)
		cache.Add(key, h)
		return h
	}
}
