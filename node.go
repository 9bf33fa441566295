// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"github.com/gaissmai/bursttrie/internal/charset"
	"github.com/gaissmai/bursttrie/internal/value"
)

// Kind is the active variant of a trie node.
type Kind uint8

const (
	KindContainer Kind = iota // flat suffix to value map, the zero value
	KindSubtrie               // one child slot per allowed character
	KindValue                 // the key terminates here
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "CONTAINER"
	case KindSubtrie:
		return "SUBTRIE"
	case KindValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// node is the recursive unit of the burst trie, a tagged union
// over the three variants container, subtrie and value leaf.
//
// A container maps the remaining key suffixes to values and tracks
// its cost, the sum of all suffix lengths. Once the cost exceeds the
// configured maximum, the container bursts into a subtrie.
//
// A subtrie holds a fixed array of child nodes, one per allowed
// character. Slot 0 is reserved for the value stored under the
// empty remaining key, it always holds a value leaf.
//
// The zero value is an empty container.
type node[V any] struct {
	kind Kind

	// container
	entries map[string]V
	cost    int

	// subtrie
	children *[charset.Width]*node[V]
	cldCount uint8

	// value leaf
	value V
}

func newContainer[V any]() *node[V] {
	return &node[V]{kind: KindContainer, entries: make(map[string]V)}
}

func newValue[V any](val V) *node[V] {
	return &node[V]{kind: KindValue, value: val}
}

// becomeSubtrie rewrites n in place to an empty subtrie,
// all former contents are dropped.
func (n *node[V]) becomeSubtrie() {
	var zero V

	n.kind = KindSubtrie
	n.entries = nil
	n.cost = 0
	n.value = zero
	n.children = new([charset.Width]*node[V])
	n.cldCount = 0
}

// demote turns a value leaf in place into a subtrie,
// with the old value moved to the terminal slot.
func (n *node[V]) demote() {
	leaf := newValue(n.value)
	n.becomeSubtrie()
	n.setChild(charset.TerminalSlot, leaf)
}

// ################## subtrie slots ###########################

// setChild sets the child at slot, returns true if the slot was occupied.
func (n *node[V]) setChild(slot uint8, kid *node[V]) (exists bool) {
	if exists = n.children[slot] != nil; !exists {
		n.cldCount++
	}
	n.children[slot] = kid
	return exists
}

// deleteChild clears the slot, removing a non-existent child is a no-op.
func (n *node[V]) deleteChild(slot uint8) (exists bool) {
	if n.children[slot] == nil {
		return false
	}
	n.cldCount--
	n.children[slot] = nil
	return true
}

// ################## container entries #######################

// putEntry inserts or updates suffix, the cost grows only for new suffixes.
func (n *node[V]) putEntry(suffix string, val V) (exists bool) {
	// lazy init, the root of a zero value Trie has no map yet
	if n.entries == nil {
		n.entries = make(map[string]V)
	}

	if _, exists = n.entries[suffix]; !exists {
		n.cost += len(suffix)
	}
	n.entries[suffix] = val
	return exists
}

func (n *node[V]) deleteEntry(suffix string) (val V, exists bool) {
	if val, exists = n.entries[suffix]; exists {
		delete(n.entries, suffix)
		n.cost -= len(suffix)
	}
	return val, exists
}

// ################## insert, get, remove ######################

// insert stores val under key below n, bursting containers whose cost
// exceeds maxCost. Reports true if key was not present before.
//
// Keys with characters outside the alphabet are silently rejected at the
// level where the bad character shows up, nodes already created on the
// way down are retained.
func (n *node[V]) insert(key string, val V, maxCost int) (isNew bool) {
	for {
		switch n.kind {
		case KindValue:
			if key == "" {
				n.value = val
				return false
			}

			// a value leaf accepts only the empty key,
			// push the value down and retry as subtrie
			n.demote()

		case KindContainer:
			if !charset.Valid(key) {
				return false
			}

			exists := n.putEntry(key, val)
			if key != "" && n.cost > maxCost {
				n.burst(maxCost)
			}
			return !exists

		case KindSubtrie:
			if key == "" {
				if leaf := n.children[charset.TerminalSlot]; leaf != nil {
					leaf.value = val
					return false
				}
				n.setChild(charset.TerminalSlot, newValue(val))
				return true
			}

			head, tail := charset.Split(key)
			slot, ok := charset.Slot(head)
			if !ok {
				return false
			}

			kid := n.children[slot]
			if kid == nil {
				kid = newContainer[V]()
				n.setChild(slot, kid)
			}

			// descend down to next trie level
			n, key = kid, tail

		default:
			panic("unreachable")
		}
	}
}

// get returns the value stored under key below n.
func (n *node[V]) get(key string) (val V, ok bool) {
	for {
		switch n.kind {
		case KindValue:
			if key == "" {
				return n.value, true
			}
			// the key extends past the leaf
			return val, false

		case KindContainer:
			val, ok = n.entries[key]
			return val, ok

		case KindSubtrie:
			if key == "" {
				if leaf := n.children[charset.TerminalSlot]; leaf != nil {
					return leaf.value, true
				}
				return val, false
			}

			head, tail := charset.Split(key)
			slot, ok := charset.Slot(head)
			if !ok {
				return val, false
			}

			kid := n.children[slot]
			if kid == nil {
				return val, false
			}
			n, key = kid, tail

		default:
			panic("unreachable")
		}
	}
}

// remove deletes key below n and returns the removed value.
//
// remove must be called on a container or subtrie, value leaves are
// removed by clearing their slot in the parent subtrie. Calling remove
// on a value leaf panics.
//
// Emptied containers and subtries are not pruned.
func (n *node[V]) remove(key string) (val V, exists bool) {
	for {
		switch n.kind {
		case KindValue:
			panic("bursttrie: remove called on a value leaf")

		case KindContainer:
			return n.deleteEntry(key)

		case KindSubtrie:
			if key == "" {
				leaf := n.children[charset.TerminalSlot]
				if leaf == nil {
					return val, false
				}
				n.deleteChild(charset.TerminalSlot)
				return leaf.value, true
			}

			head, tail := charset.Split(key)
			slot, ok := charset.Slot(head)
			if !ok {
				return val, false
			}

			kid := n.children[slot]
			if kid == nil {
				return val, false
			}

			if kid.kind == KindValue {
				if tail != "" {
					return val, false
				}
				// the leaf is the whole subtree at slot
				n.deleteChild(slot)
				return kid.value, true
			}

			n, key = kid, tail

		default:
			panic("unreachable")
		}
	}
}

// ################## clone ####################################

// cloneFlat copies the node without its children,
// a subtrie gets a new, empty slot array.
func (n *node[V]) cloneFlat(cloneFn value.CloneFunc[V]) *node[V] {
	c := &node[V]{kind: n.kind, cost: n.cost, cldCount: n.cldCount}

	switch n.kind {
	case KindContainer:
		c.entries = make(map[string]V, len(n.entries))
		for k, v := range n.entries {
			c.entries[k] = cloneFn(v)
		}
	case KindSubtrie:
		c.children = new([charset.Width]*node[V])
	case KindValue:
		c.value = cloneFn(n.value)
	}

	return c
}

// cloneDeep returns a deep copy of the subtree rooted at n.
func (n *node[V]) cloneDeep(cloneFn value.CloneFunc[V]) *node[V] {
	type pair struct{ src, dst *node[V] }

	root := n.cloneFlat(cloneFn)
	stack := []pair{{n, root}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.src.kind != KindSubtrie {
			continue
		}

		for slot, kid := range p.src.children {
			if kid == nil {
				continue
			}
			c := kid.cloneFlat(cloneFn)
			p.dst.children[slot] = c
			stack = append(stack, pair{kid, c})
		}
	}

	return root
}
