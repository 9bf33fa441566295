// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"fmt"
	"sync"

	"github.com/gaissmai/bursttrie/internal/value"
)

// DefaultMaxContainerCost is used when no other cost is configured.
const DefaultMaxContainerCost = 256

// Trie is a burst trie with string keys and payload V.
// The zero value is ready to use, with [DefaultMaxContainerCost].
//
// Keys may only contain the characters of the trie alphabet:
// ASCII letters, digits and ASCII punctuation. Keys with other characters
// are silently ignored by Insert and never found by Get.
//
// A Trie is not safe for concurrent mutation, or for reading while
// another goroutine mutates it. Concurrent readers on an unmodified
// Trie are safe. Use [Trie.Clone] to get an independent copy,
// e.g. for copy-on-write updates under an external lock.
type Trie[V any] struct {
	// used by -copylocks checker from `go vet`.
	// A copied Trie would share its nodes with the original.
	_ [0]sync.Mutex

	// the root node is a container until the first burst
	root node[V]

	// zero means DefaultMaxContainerCost
	maxCost int

	// the number of keys in the trie
	size int
}

// Option configures a Trie at construction.
type Option func(*options)

type options struct {
	maxCost int
}

// WithMaxContainerCost sets the cost threshold, the sum of all key suffix
// lengths, above which a container bursts into a subtrie.
// It panics if cost is not positive.
func WithMaxContainerCost(cost int) Option {
	if cost <= 0 {
		panic(fmt.Errorf("bursttrie: max container cost must be positive, got %d", cost))
	}
	return func(o *options) {
		o.maxCost = cost
	}
}

// New returns an empty trie configured by opts.
func New[V any](opts ...Option) *Trie[V] {
	o := options{maxCost: DefaultMaxContainerCost}
	for _, opt := range opts {
		opt(&o)
	}
	return &Trie[V]{maxCost: o.maxCost}
}

// MaxContainerCost returns the configured burst threshold.
func (t *Trie[V]) MaxContainerCost() int {
	if t == nil || t.maxCost == 0 {
		return DefaultMaxContainerCost
	}
	return t.maxCost
}

// Insert adds key to the trie, with value val.
// If key is already present in the trie, its value is set to val.
func (t *Trie[V]) Insert(key string, val V) {
	if t.root.insert(key, val, t.MaxContainerCost()) {
		t.size++
	}
}

// Get returns the value associated with key and true,
// or the zero value and false if key is not present.
func (t *Trie[V]) Get(key string) (val V, ok bool) {
	if t == nil {
		return
	}
	return t.root.get(key)
}

// Delete removes key from the trie, key does not have to be present.
func (t *Trie[V]) Delete(key string) {
	_, _ = t.GetAndDelete(key)
}

// GetAndDelete deletes key from the trie and returns
// the associated value and true, or the zero value and false
// if key was not present.
func (t *Trie[V]) GetAndDelete(key string) (val V, ok bool) {
	if t == nil {
		return
	}

	if val, ok = t.root.remove(key); ok {
		t.size--
	}
	return val, ok
}

// Size returns the number of keys in the trie in O(1).
func (t *Trie[V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Clone returns a copy of the trie.
// The node graph is always copied, the values are copied as well
// if V implements the [Cloner] interface.
func (t *Trie[V]) Clone() *Trie[V] {
	if t == nil {
		return nil
	}

	c := &Trie[V]{
		maxCost: t.maxCost,
		size:    t.size,
	}
	c.root = *t.root.cloneDeep(value.CloneFnFactory[V]())

	return c
}
