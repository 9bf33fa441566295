// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bursttrie provides a burst trie, a hybrid prefix tree for
// string keys with dense key spaces like URL paths or file paths.
//
// Short runs of keys are stored in flat containers, mapping the
// remaining key suffix to the value. Only when the cost of a container,
// the sum of all its suffix lengths, exceeds a configurable threshold,
// the container bursts into a subtrie with one slot per allowed
// character. The burst is applied to the children recursively as needed
// and is never reversed.
//
// This keeps small datasets compact and still scales to hundreds of
// thousands of keys without the node-per-character blowup of a
// classic trie:
//
//	t := bursttrie.New[int](bursttrie.WithMaxContainerCost(2048))
//	t.Insert("tl/emails/v2/footer.js", 42)
//	val, ok := t.Get("tl/emails/v2/footer.js")
//
// The trie alphabet consists of the ASCII letters, digits and the
// ASCII punctuation characters. Keys with other characters are
// silently rejected: Insert stores nothing for them and Get never
// finds them.
//
// The node graph can be inspected with [Trie.Dump] and walked in a
// stable pre-order with [Trie.PreOrder].
package bursttrie
