// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates path-like keys with nested common prefixes,
// for tests and benchmarks.
package random

import (
	"math/rand/v2"
	"strings"
)

var (
	roots    = []string{"tl", "static", "assets", "api", "src"}
	segments = []string{
		"emails", "templates", "components", "partials", "layouts",
		"v1", "v2", "v3", "admin", "users", "orders", "billing",
		"i18n", "en-US", "de-DE", "fr_FR", "img", "css", "js", "lib",
	}
	exts = []string{".js", ".css", ".html", ".json", ".png", ".md"}
)

const nameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// Path returns a random path like "tl/emails/v2/footer-x7.js".
func Path(prng *rand.Rand) string {
	var sb strings.Builder

	sb.WriteString(roots[prng.IntN(len(roots))])

	for range 1 + prng.IntN(4) {
		sb.WriteByte('/')
		sb.WriteString(segments[prng.IntN(len(segments))])
	}

	sb.WriteByte('/')
	for range 1 + prng.IntN(10) {
		sb.WriteByte(nameChars[prng.IntN(len(nameChars))])
	}
	sb.WriteString(exts[prng.IntN(len(exts))])

	return sb.String()
}

// Paths returns n distinct random paths.
func Paths(prng *rand.Rand, n int) []string {
	seen := make(map[string]bool, n)
	result := make([]string, 0, n)

	for len(result) < n {
		p := Path(prng)
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}

// Key returns a short random key over a small alphabet, including
// the empty key, to provoke shared prefixes, value leaves and bursts.
func Key(prng *rand.Rand) string {
	const chars = "ab/."

	b := make([]byte, prng.IntN(8))
	for i := range b {
		b[i] = chars[prng.IntN(len(chars))]
	}
	return string(b)
}
