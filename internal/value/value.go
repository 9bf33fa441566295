// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with generic type parameters
// as payload at runtime.
//
// Values stored in the trie may report their own memory burden via the
// Burdener interface and may provide deep copies via the Cloner interface.
// Both are optional capabilities, detected at runtime with a type assertion,
// with a sensible fallback for all other types.
//
// Additionally, zero-sized type (ZST) detection improves the clarity of
// debug output. Since zero-sized types carry no information in their values,
// omitting them from dumps reduces line noise and makes the output more
// readable.
//
// This is an internal package used by the bursttrie data structure.
package value

import (
	"reflect"
)

// IsZST reports whether type V is a zero-sized type (ZST).
//
// Zero-sized types such as struct{}, [0]byte, or structs/arrays with no fields
// occupy no memory. The Go runtime optimizes allocations of ZSTs by returning
// pointers to the same memory address (typically runtime.zerobase).
//
// This function exploits that optimization: it allocates two instances of V
// and compares their addresses. If the addresses are equal, V must be a ZST.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

// escapeToHeap forces two allocations of type V to escape to the heap.
//
// The go:noinline directive prevents the compiler from proving
// that a == b at compile time.
//
//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Burdener is implemented by payload types that know their
// approximate in-memory footprint.
type Burdener interface {
	MemoryBurden() int
}

// Burden returns the approximate memory footprint of val.
//
// If V implements Burdener, its MemoryBurden method decides.
// Otherwise the static size of V is used, for strings and byte slices
// plus their length.
func Burden[V any](val V) int {
	// you can't assert directly on a type parameter
	switch v := any(val).(type) {
	case Burdener:
		return v.MemoryBurden()
	case string:
		return staticSize[V]() + len(v)
	case []byte:
		return staticSize[V]() + len(v)
	}
	return staticSize[V]()
}

func staticSize[V any]() int {
	return int(reflect.TypeFor[V]().Size())
}

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], Trie.Clone uses its Clone method
// to perform deep copies.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc is a type definition for a function that takes a value of type V
// and returns the (possibly cloned) value of type V.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns a CloneFunc.
// If V implements Cloner[V], the returned function performs
// a deep copy using Clone(), otherwise it returns CopyVal.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return CopyVal[V]
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If val does not implement
// Cloner[V] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[V any](val V) V {
	// you can't assert directly on a type parameter
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// CopyVal just copies the value of any type V.
func CopyVal[V any](val V) V {
	return val
}
