// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"iter"

	"github.com/gaissmai/bursttrie/internal/charset"
	"github.com/gaissmai/bursttrie/internal/value"
)

// NodeInfo describes one node of the trie, as yielded by [Trie.PreOrder].
type NodeInfo struct {
	Kind  Kind
	Path  string // the key prefix consumed on the way down to this node
	Level int    // number of subtries above this node
	Slot  uint8  // slot in the parent subtrie, 0 for the root or a terminal value

	// Entries is the number of keys for a container,
	// the number of occupied slots for a subtrie and 1 for a value.
	Entries int

	// Cost is the sum of all suffix lengths, only set for containers.
	Cost int
}

// Stats summarizes the shape of the trie.
type Stats struct {
	Containers int
	Subtries   int
	Values     int

	Count        int // number of keys
	Depth        int
	MemoryBurden int
}

// walkItem is a node with its position in the trie.
type walkItem[V any] struct {
	n     *node[V]
	path  string // empty unless requested
	level int
	slot  uint8
}

// preOrder returns an iterator over all nodes below n in pre-order,
// the children of a subtrie in ascending slot order.
// An explicit stack is used instead of recursion.
//
// The path of an item is only built with withPath set, it costs
// O(level) bytes per node.
func (n *node[V]) preOrder(withPath bool) iter.Seq[walkItem[V]] {
	return func(yield func(walkItem[V]) bool) {
		stack := []walkItem[V]{{n: n}}

		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(item) {
				return
			}

			if item.n.kind != KindSubtrie {
				continue
			}

			// push in reverse, pop in ascending slot order
			for slot := charset.Width - 1; slot >= 0; slot-- {
				kid := item.n.children[slot]
				if kid == nil {
					continue
				}

				path := item.path
				if withPath && slot != charset.TerminalSlot {
					path += string(charset.Char(uint8(slot)))
				}

				stack = append(stack, walkItem[V]{
					n:     kid,
					path:  path,
					level: item.level + 1,
					slot:  uint8(slot),
				})
			}
		}
	}
}

// info converts the walk item to the exported NodeInfo.
func (item walkItem[V]) info() NodeInfo {
	ni := NodeInfo{
		Kind:  item.n.kind,
		Path:  item.path,
		Level: item.level,
		Slot:  item.slot,
	}

	switch item.n.kind {
	case KindContainer:
		ni.Entries = len(item.n.entries)
		ni.Cost = item.n.cost
	case KindSubtrie:
		ni.Entries = int(item.n.cldCount)
	case KindValue:
		ni.Entries = 1
	}

	return ni
}

// PreOrder returns an iterator over all nodes of the trie, parents
// before children and the children of a subtrie in slot order.
// The order is stable for the same sequence of mutations.
func (t *Trie[V]) PreOrder() iter.Seq[NodeInfo] {
	return func(yield func(NodeInfo) bool) {
		if t == nil {
			return
		}
		for item := range t.root.preOrder(true) {
			if !yield(item.info()) {
				return
			}
		}
	}
}

// stats collects count, depth and memory burden in one walk.
//
// The depth of a subtrie is 1 plus the maximum depth of its children,
// a container has depth 1 and a value leaf depth 0. Flattened, this is
// the maximum over all nodes of level plus own depth, where the own
// depth is 1 for containers and subtries.
func (n *node[V]) stats() (s Stats) {
	for item := range n.preOrder(false) {
		own := 1

		switch kid := item.n; kid.kind {
		case KindContainer:
			s.Containers++
			s.Count += len(kid.entries)
			for suffix, val := range kid.entries {
				s.MemoryBurden += len(suffix) + value.Burden(val)
			}

		case KindSubtrie:
			s.Subtries++
			s.MemoryBurden += charset.Width

		case KindValue:
			own = 0
			s.Values++
			s.Count++
			s.MemoryBurden += value.Burden(kid.value)
		}

		s.Depth = max(s.Depth, item.level+own)
	}

	return s
}

// Stats returns the node statistics of the trie.
func (t *Trie[V]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.root.stats()
}

// Count returns the number of keys, counted by a full walk.
// See also [Trie.Size] for the tracked O(1) variant.
func (t *Trie[V]) Count() int {
	return t.Stats().Count
}

// Depth returns the depth of the trie, the number of subtrie levels
// on the longest path plus one for a terminating container.
func (t *Trie[V]) Depth() int {
	return t.Stats().Depth
}

// MemoryBurden returns an approximate footprint of the trie,
// one unit per subtrie slot plus suffix lengths and the value
// burdens, see [Burdener].
func (t *Trie[V]) MemoryBurden() int {
	return t.Stats().MemoryBurden
}
