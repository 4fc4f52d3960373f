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

// Package hamt implements a persistent Hash Array Mapped Trie: every
// Assoc/Dissoc returns a new Map sharing all untouched structure with its
// predecessor. See: http://blog.higher-order.net/2009/09/08/understanding-clojures-persistenthashmap-deftwice
package hamt

import (
	"github.com/probeum/persistent/internal/conslist"
	"github.com/probeum/persistent/internal/plog"
	"github.com/probeum/persistent/iterator"
)

// Map is a persistent, immutable hash map keyed by K with values V.
// The zero Map is not valid; construct one with New or NewString.
type Map[K, V any] struct {
	root  node[K, V]
	count int

	hash  HashFunc[K]
	eqKey EqualFunc[K]
	eqVal EqualFunc[V]
}

// New creates an empty Map using the supplied hash and equality
// functions. All three must be non-nil, whatever K and V are; New panics
// otherwise. NewString and NewStringMap supply the string defaults.
func New[K, V any](hash HashFunc[K], eqKey EqualFunc[K], eqVal EqualFunc[V]) *Map[K, V] {
	if hash == nil || eqKey == nil || eqVal == nil {
		panic("hamt: New requires a hash function and key/value equality functions")
	}
	return &Map[K, V]{hash: hash, eqKey: eqKey, eqVal: eqVal}
}

// NewString creates an empty Map[string, V] using the spec's default
// hash (DJB2) and byte-sequence equality for keys; the caller supplies a
// value equality function so Assoc can still detect no-op updates for an
// arbitrary V.
func NewString[V any](eqVal EqualFunc[V]) *Map[string, V] {
	return New[string, V](DefaultHash, defaultStringEqual, eqVal)
}

// NewStringMap creates an empty Map[string, string], all three of whose
// hash/equality functions use the spec's defaults (DJB2 hashing,
// byte-sequence equality for both keys and values) — the fully defaulted
// constructor the "all three are optional with string defaults" clause of
// the map API describes.
func NewStringMap() *Map[string, string] {
	return New[string, string](DefaultHash, defaultStringEqual, defaultStringEqual)
}

// Count returns the number of key/value pairs stored in m.
func (m *Map[K, V]) Count() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Empty reports whether m holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Count() == 0
}

// Get returns the value associated with key, and whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil || m.root == nil {
		return zero, false
	}
	return get(m.root, 0, key, m.hash(key), m.eqKey)
}

// Assoc returns a Map identical to m but with key bound to val. If m
// already maps key to a value eqVal considers equal to val, Assoc
// returns m itself (by pointer identity), so callers can detect a no-op
// via ==.
func (m *Map[K, V]) Assoc(key K, val V) *Map[K, V] {
	var newRoot node[K, V]
	st := statusUnchanged

	if m.root == nil {
		newRoot = &leafNode[K, V]{key: key, val: val, hash: m.hash(key)}
		st = statusAdded
	} else {
		newRoot, st = assoc(m.root, 0, key, val, m.hash(key), m.eqKey, m.eqVal)
	}

	if st == statusUnchanged {
		return m
	}

	plog.Debug("hamt assoc", "status", statusName(st), "count", m.count)

	cp := m.copy()
	cp.root = newRoot
	if st == statusAdded {
		cp.count++
	}
	return cp
}

// Dissoc returns a Map identical to m but with key (and its value)
// removed, if present. If key is not in m, Dissoc returns m itself.
func (m *Map[K, V]) Dissoc(key K) *Map[K, V] {
	if m.root == nil {
		return m
	}

	newRoot, st := dissoc(m.root, 0, key, m.hash(key), m.eqKey)
	if st == statusUnchanged {
		return m
	}

	plog.Debug("hamt dissoc", "status", statusName(st), "count", m.count)

	cp := m.copy()
	cp.root = newRoot
	cp.count--
	return cp
}

// Visit calls fn once for every (key, val) pair in m, in an unspecified
// but deterministic-for-this-value order.
func (m *Map[K, V]) Visit(fn func(key K, val V)) {
	if m == nil || m.root == nil {
		return
	}
	visit(m.root, fn)
}

// Entry is one (key, val) pair, as yielded by Map.Iterator.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Iterator returns an iterator over m's entries, or nil (the terminal
// indicator) if m is empty. Entries are snapshotted into a cons list by
// one Visit pass at construction time, so the iterator is unaffected by
// any Map derived from m afterwards — exactly the source's
// hashmap_visit + iterator_visit two-step build.
func (m *Map[K, V]) Iterator() *iterator.Iterator[Entry[K, V]] {
	if m.Empty() {
		return nil
	}

	var entries *conslist.List[Entry[K, V]]
	m.Visit(func(key K, val V) {
		entries = conslist.Cons(entries, Entry[K, V]{Key: key, Val: val})
	})

	return buildIterator(entries)
}

func buildIterator[T any](lst *conslist.List[T]) *iterator.Iterator[T] {
	if lst.Empty() {
		return nil
	}
	return iterator.New(lst.Head(), func() *iterator.Iterator[T] {
		return buildIterator(lst.Tail())
	})
}

func (m *Map[K, V]) copy() *Map[K, V] {
	cp := *m
	return &cp
}

func statusName(st status) string {
	switch st {
	case statusAdded:
		return "added"
	case statusUpdated:
		return "updated"
	case statusRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}
