// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/gaissmai/bursttrie/internal/charset"
	"github.com/gaissmai/bursttrie/internal/value"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// DumpString is just a wrapper for Dump.
func (t *Trie[V]) DumpString() string {
	w := new(strings.Builder)
	t.Dump(w)

	return w.String()
}

// Dump writes the trie structure and all the nodes to w,
// in pre-order and with sorted container entries.
// The output is deterministic for the same set of mutations.
func (t *Trie[V]) Dump(w io.Writer) {
	if t == nil {
		return
	}

	s := t.Stats()
	fmt.Fprintf(w, "### size(%d), maxContainerCost(%d), containers(%d), subtries(%d), values(%d)\n",
		t.size, t.MaxContainerCost(), s.Containers, s.Subtries, s.Values)

	// zero-sized values carry no information
	printVals := !value.IsZST[V]()

	for item := range t.root.preOrder(true) {
		item.dump(w, printVals)
	}
}

// dump the node to w.
func (item walkItem[V]) dump(w io.Writer, printVals bool) {
	n := item.n
	indent := strings.Repeat(".", item.level)

	fmt.Fprintf(w, "%s[%s] level: %d path: %q", indent, n.kind, item.level, item.path)

	switch n.kind {
	case KindContainer:
		fmt.Fprintf(w, " cost: %d entries(#%d)\n", n.cost, len(n.entries))

		for _, suffix := range slices.Sorted(maps.Keys(n.entries)) {
			if printVals {
				fmt.Fprintf(w, "%s  %q: %v\n", indent, suffix, n.entries[suffix])
			} else {
				fmt.Fprintf(w, "%s  %q\n", indent, suffix)
			}
		}

	case KindSubtrie:
		fmt.Fprintf(w, " slots(#%d): %s\n", n.cldCount, slotsFmt(n.children))

	case KindValue:
		if printVals {
			fmt.Fprintf(w, " value: %v\n", n.value)
		} else {
			fmt.Fprintln(w)
		}
	}
}

// slotsFmt renders the occupied slots as characters,
// the terminal slot as 'ε'.
func slotsFmt[V any](children *[charset.Width]*node[V]) string {
	var sb strings.Builder
	for slot, kid := range children {
		if kid == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if slot == charset.TerminalSlot {
			sb.WriteString("ε")
			continue
		}
		sb.WriteByte(charset.Char(uint8(slot)))
	}
	return sb.String()
}
