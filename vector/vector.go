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

// Package vector implements a persistent, immutable vector: a dense,
// integer-indexed sequence supporting amortized O(1) Push/Pop at the
// growing end and O(log32 n) Get/Set elsewhere, via a 32-ary
// bit-partitioned trie plus an unindexed tail buffer. See:
// https://hypirion.com/musings/understanding-persistent-vector-pt-1
package vector

import (
	"github.com/probeum/persistent/internal/plog"
	"github.com/probeum/persistent/iterator"
)

// Vector is a persistent, immutable sequence of T. The zero Vector is a
// valid empty vector.
type Vector[T any] struct {
	count int
	shift int // bits of tree height above the leaf level; 0 when root is nil or itself a leaf
	root  *vecNode[T]
	tail  []T
}

// New returns an empty Vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Of returns a Vector containing items, in order.
func Of[T any](items ...T) *Vector[T] {
	v := New[T]()
	for _, it := range items {
		v = v.Push(it)
	}
	return v
}

// Count returns the number of elements in v.
func (v *Vector[T]) Count() int {
	if v == nil {
		return 0
	}
	return v.count
}

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Count() == 0
}

func (v *Vector[T]) tailOffset() int {
	return v.count - len(v.tail)
}

// arrayFor returns the leaf block (tail or trie leaf) holding index i.
func (v *Vector[T]) arrayFor(i int) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	n := v.root
	for level := v.shift; level > 0; level -= bitsPerLevel {
		n = n.children[(i>>level)&nodeMask]
	}
	return n.elements
}

// Get returns the element at index i, and whether i was in range.
func (v *Vector[T]) Get(i int) (T, bool) {
	var zero T
	if v == nil || i < 0 || i >= v.count {
		return zero, false
	}
	block := v.arrayFor(i)
	return block[i&nodeMask], true
}

// Set returns a Vector identical to v except that index i holds val. An
// out-of-range i is reported silently: Set returns v unchanged, matching
// Get's (zero, false) treatment of the same condition.
func (v *Vector[T]) Set(i int, val T) *Vector[T] {
	if i < 0 || i >= v.count {
		return v
	}

	if i >= v.tailOffset() {
		newTail := make([]T, len(v.tail))
		copy(newTail, v.tail)
		newTail[i-v.tailOffset()] = val
		return &Vector[T]{count: v.count, shift: v.shift, root: v.root, tail: newTail}
	}

	return &Vector[T]{count: v.count, shift: v.shift, root: setInTree(v.root, v.shift, i, val), tail: v.tail}
}

func setInTree[T any](n *vecNode[T], level int, i int, val T) *vecNode[T] {
	if level == 0 {
		cp := n.copyLeaf()
		cp.elements[i&nodeMask] = val
		return cp
	}
	cp := n.copyInterior()
	idx := (i >> level) & nodeMask
	cp.children[idx] = setInTree(n.children[idx], level-bitsPerLevel, i, val)
	return cp
}

// Push returns a Vector identical to v with val appended.
func (v *Vector[T]) Push(val T) *Vector[T] {
	plog.Debug("vector push", "count", v.count)

	if len(v.tail) < nodeWidth {
		newTail := make([]T, len(v.tail)+1)
		copy(newTail, v.tail)
		newTail[len(v.tail)] = val
		return &Vector[T]{count: v.count + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	tailNode := newLeafNode(v.tail)
	newShift := v.shift

	var newRoot *vecNode[T]
	switch {
	case v.root == nil:
		newRoot = tailNode
	case (v.count >> bitsPerLevel) > (1 << v.shift):
		newRoot = newInteriorNode[T]()
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, tailNode)
		newShift = v.shift + bitsPerLevel
	default:
		newRoot = pushTail(v.shift, v.root, v.count, tailNode)
	}

	return &Vector[T]{count: v.count + 1, shift: newShift, root: newRoot, tail: []T{val}}
}

func pushTail[T any](level int, parent *vecNode[T], count int, tailNode *vecNode[T]) *vecNode[T] {
	newParent := parent.copyInterior()
	subIdx := ((count - 1) >> level) & nodeMask

	if level == bitsPerLevel {
		newParent.children[subIdx] = tailNode
		return newParent
	}

	if child := parent.children[subIdx]; child != nil {
		newParent.children[subIdx] = pushTail(level-bitsPerLevel, child, count, tailNode)
	} else {
		newParent.children[subIdx] = newPath(level-bitsPerLevel, tailNode)
	}
	return newParent
}

// Pop returns a Vector identical to v with its last element removed. If
// v is already empty, Pop returns v unchanged.
func (v *Vector[T]) Pop() *Vector[T] {
	if v.count == 0 {
		return v
	}
	plog.Debug("vector pop", "count", v.count)

	if v.count == 1 {
		return &Vector[T]{}
	}

	if len(v.tail) > 1 {
		newTail := make([]T, len(v.tail)-1)
		copy(newTail, v.tail[:len(v.tail)-1])
		return &Vector[T]{count: v.count - 1, shift: v.shift, root: v.root, tail: newTail}
	}

	newTailBlock := v.arrayFor(v.count - 2)
	newTail := make([]T, len(newTailBlock))
	copy(newTail, newTailBlock)

	if v.shift == 0 {
		return &Vector[T]{count: v.count - 1, tail: newTail}
	}

	newRoot := popTail(v.shift, v.root, v.count)
	newShift := v.shift

	switch {
	case newRoot == nil:
		newShift = 0
	case newShift > bitsPerLevel && newRoot.children[1] == nil:
		newRoot = newRoot.children[0]
		newShift -= bitsPerLevel
	}

	return &Vector[T]{count: v.count - 1, shift: newShift, root: newRoot, tail: newTail}
}

// popTail returns the subtree rooted where node was once its last leaf
// (addressed by count-2, the index that survives the pop) is dropped,
// or nil if node's entire subtree was that leaf.
func popTail[T any](level int, node *vecNode[T], count int) *vecNode[T] {
	subIdx := ((count - 2) >> level) & nodeMask

	if level > bitsPerLevel {
		newChild := popTail(level-bitsPerLevel, node.children[subIdx], count)
		if newChild == nil && subIdx == 0 {
			return nil
		}
		cp := node.copyInterior()
		cp.children[subIdx] = newChild
		return cp
	}

	if subIdx == 0 {
		return nil
	}
	cp := node.copyInterior()
	cp.children[subIdx] = nil
	return cp
}

// Tail exposes the vector's unindexed tail buffer, the elements not yet
// folded into the trie. It is a read-only diagnostic accessor, primarily
// for tests and the CLI's inspection commands, not part of the
// persistent-collection algorithm itself; mutating the returned slice
// has no effect on v.
func (v *Vector[T]) Tail() []T {
	if v == nil {
		return nil
	}
	cp := make([]T, len(v.tail))
	copy(cp, v.tail)
	return cp
}

// Visit calls fn once for every element of v, in index order.
func (v *Vector[T]) Visit(fn func(index int, val T)) {
	if v == nil {
		return
	}
	for i := 0; i < v.count; i++ {
		val, _ := v.Get(i)
		fn(i, val)
	}
}

// Iterator returns an iterator over v's elements in index order, or nil
// (the terminal indicator) if v is empty.
func (v *Vector[T]) Iterator() *iterator.Iterator[T] {
	return buildIterator(v, 0)
}

func buildIterator[T any](v *Vector[T], i int) *iterator.Iterator[T] {
	val, ok := v.Get(i)
	if !ok {
		return nil
	}
	return iterator.New(val, func() *iterator.Iterator[T] {
		return buildIterator(v, i+1)
	})
}
