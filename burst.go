// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"maps"
	"slices"

	"github.com/gaissmai/bursttrie/internal/charset"
)

// burst rewrites the container n in place into a subtrie and
// redistributes its entries one character deeper.
//
//   - the empty suffix goes to the terminal slot as value leaf
//   - a single character suffix becomes a value leaf at its slot,
//     no intermediate container is created
//   - longer suffixes go into a new single-entry container at the
//     slot of their head character, or are placed below the child
//     already present there
//
// A container pushed over maxCost by a placed entry bursts in turn.
// Cascading bursts are handled with an explicit worklist, the stack
// does not grow with the key length.
//
// The entries are processed in sorted order, so the resulting shape
// only depends on the set of entries, not on the map iteration order.
//
// A burst is never reversed.
func (n *node[V]) burst(maxCost int) {
	work := []*node[V]{n}

	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]

		// pushed twice and already burst
		if c.kind != KindContainer {
			continue
		}

		work = c.redistribute(maxCost, work)
	}
}

// redistribute performs a single burst of n, containers pushed over
// maxCost are appended to work.
func (n *node[V]) redistribute(maxCost int, work []*node[V]) []*node[V] {
	entries := n.entries
	n.becomeSubtrie()

	for _, suffix := range slices.Sorted(maps.Keys(entries)) {
		val := entries[suffix]

		if suffix == "" {
			n.setChild(charset.TerminalSlot, newValue(val))
			continue
		}

		head, tail := charset.Split(suffix)
		slot, ok := charset.Slot(head)
		if !ok {
			// unreachable, containers reject invalid suffixes
			continue
		}

		kid := n.children[slot]
		switch {
		case kid != nil:
			if c, key := kid.place(tail, val); c != nil && key != "" && c.cost > maxCost {
				work = append(work, c)
			}

		case tail == "":
			n.setChild(slot, newValue(val))

		default:
			kid = newContainer[V]()
			kid.putEntry(tail, val)
			n.setChild(slot, kid)
		}
	}

	return work
}

// place stores val under the valid key below n like insert, but
// never bursts. It returns the container that took the entry and
// the suffix stored there, or nil if the entry ended in a value leaf.
func (n *node[V]) place(key string, val V) (*node[V], string) {
	for {
		switch n.kind {
		case KindValue:
			if key == "" {
				n.value = val
				return nil, ""
			}
			n.demote()

		case KindContainer:
			n.putEntry(key, val)
			return n, key

		case KindSubtrie:
			if key == "" {
				if leaf := n.children[charset.TerminalSlot]; leaf != nil {
					leaf.value = val
				} else {
					n.setChild(charset.TerminalSlot, newValue(val))
				}
				return nil, ""
			}

			head, tail := charset.Split(key)
			slot, _ := charset.Slot(head)

			kid := n.children[slot]
			if kid == nil {
				kid = newContainer[V]()
				n.setChild(slot, kid)
			}
			n, key = kid, tail

		default:
			panic("unreachable")
		}
	}
}
