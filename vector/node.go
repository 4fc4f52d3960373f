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

const (
	bitsPerLevel = 5
	nodeWidth    = 1 << bitsPerLevel
	nodeMask     = nodeWidth - 1
)

// vecNode is a node of the bit-partitioned trie. Which field is
// meaningful is determined entirely by the caller's position in the
// tree, not by a tag on the node itself: a node reached at level 0 is a
// leaf and elements holds up to nodeWidth values, while a node reached
// at any level above 0 is interior and only children is populated. This
// mirrors the source's single node_t, distinguished only by depth.
type vecNode[T any] struct {
	children [nodeWidth]*vecNode[T]
	elements []T
}

func newInteriorNode[T any]() *vecNode[T] {
	return &vecNode[T]{}
}

func newLeafNode[T any](elements []T) *vecNode[T] {
	return &vecNode[T]{elements: elements}
}

// copyInterior returns a shallow copy of n's children array, for
// path-copy-on-write: the caller overwrites exactly one slot afterwards.
func (n *vecNode[T]) copyInterior() *vecNode[T] {
	cp := &vecNode[T]{children: n.children}
	return cp
}

// copyLeaf returns a deep copy of n's elements, so the caller can
// overwrite one slot without mutating any structure shared with an
// earlier Vector.
func (n *vecNode[T]) copyLeaf() *vecNode[T] {
	cp := &vecNode[T]{elements: make([]T, len(n.elements))}
	copy(cp.elements, n.elements)
	return cp
}

// newPath builds a chain of single-child interior nodes from level down
// to a leaf at level 0, terminating at leaf. Used when pushTail needs to
// extend the tree into a slot that has never held a node before.
func newPath[T any](level int, leaf *vecNode[T]) *vecNode[T] {
	if level == 0 {
		return leaf
	}
	ret := newInteriorNode[T]()
	ret.children[0] = newPath(level-bitsPerLevel, leaf)
	return ret
}
