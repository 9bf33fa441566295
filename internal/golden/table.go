// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow key/value table,
// implemented as a slice of items, as a golden reference for bursttrie.
package golden

import (
	"fmt"
	"slices"

	"github.com/gaissmai/bursttrie/internal/charset"
)

// Table is a simple and slow key/value table.
type Table[V any] []Item[V]

// Item is a key with its value.
type Item[V any] struct {
	Key string
	Val V
}

func (g Item[V]) String() string {
	return fmt.Sprintf("(%q, %v)", g.Key, g.Val)
}

// Insert adds or updates key, keys outside the trie alphabet are ignored.
func (t *Table[V]) Insert(key string, val V) {
	if !charset.Valid(key) {
		return
	}
	for i, item := range *t {
		if item.Key == key {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, Item[V]{key, val})
}

// Delete removes key, reports whether it was present.
func (t *Table[V]) Delete(key string) (exists bool) {
	for i, item := range *t {
		if item.Key == key {
			*t = slices.Delete(*t, i, i+1)
			return true
		}
	}
	return false
}

// Get returns the value stored under key.
func (t Table[V]) Get(key string) (val V, ok bool) {
	for _, item := range t {
		if item.Key == key {
			return item.Val, true
		}
	}
	return val, false
}

// AllSorted returns all keys in ascending order.
func (t Table[V]) AllSorted() []string {
	result := make([]string, 0, len(t))
	for _, item := range t {
		result = append(result, item.Key)
	}
	slices.Sort(result)
	return result
}
