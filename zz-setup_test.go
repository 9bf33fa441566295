// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"math/rand/v2"
	"testing"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 2_000
}

// costs, all tests with key/value semantics must behave the same
// for all of these burst thresholds
var costs = []int{1, 2, 4, 16, 64, DefaultMaxContainerCost, 2048}

// newPRNG with fixed seeds, reproducible workloads
func newPRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

// tests for deep copies with Cloner interface
type MyInt int

// implement the Cloner interface
func (i *MyInt) Clone() *MyInt {
	a := *i
	return &a
}

// tests for the Burdener capability
type weighted struct {
	name string
}

func (w weighted) MemoryBurden() int {
	return 100 + len(w.name)
}

// tenPaths share nested common prefixes
var tenPaths = []struct {
	key string
	val int
}{
	{"tl/emails/transactional/partials/footer.js", 1},
	{"tl/emails/transactional/partials/button.js", 2},
	{"tl/emails/transactional/partials/header.js", 3},
	{"tl/emails/transactional/layouts/default.js", 4},
	{"tl/emails/transactional/layouts/minimal.js", 5},
	{"tl/emails/marketing/partials/footer.js", 6},
	{"tl/emails/marketing/partials/banner.js", 7},
	{"tl/emails/marketing/newsletter.js", 8},
	{"tl/emails/index.js", 9},
	{"tl/index.js", 10},
}
