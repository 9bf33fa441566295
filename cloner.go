// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import "github.com/gaissmai/bursttrie/internal/value"

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Trie.Clone] will use its Clone
// method to perform deep copies.
type Cloner[V any] = value.Cloner[V]

// Burdener is implemented by payload types that report their own
// approximate memory footprint, used by [Trie.MemoryBurden].
// Payload types without this capability are accounted with their
// static size, strings and byte slices plus their length.
type Burdener = value.Burdener
