// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bursttrie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/bursttrie/internal/random"
)

func TestHello(t *testing.T) {
	t.Parallel()
	tr := New[int]()
	tr.Insert("Hello", 1)

	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, 1, tr.Size())

	val, ok := tr.Get("Hello")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = tr.Get("Hell")
	assert.False(t, ok)
	_, ok = tr.Get("Hello!")
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var tr Trie[string]

	assert.Equal(t, DefaultMaxContainerCost, tr.MaxContainerCost())
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, 1, tr.Depth(), "empty container")
	assert.Equal(t, 0, tr.MemoryBurden())

	tr.Insert("a/b", "x")
	val, ok := tr.Get("a/b")
	assert.True(t, ok)
	assert.Equal(t, "x", val)
}

func TestNilTrie(t *testing.T) {
	t.Parallel()
	var tr *Trie[int]

	assert.NotPanics(t, func() {
		_, ok := tr.Get("x")
		assert.False(t, ok)
		_, ok = tr.GetAndDelete("x")
		assert.False(t, ok)
		tr.Delete("x")

		assert.Equal(t, 0, tr.Size())
		assert.Equal(t, 0, tr.Count())
		assert.Equal(t, 0, tr.Depth())
		assert.Equal(t, 0, tr.MemoryBurden())
		assert.Equal(t, "", tr.DumpString())
		assert.Nil(t, tr.Clone())
		assert.Equal(t, DefaultMaxContainerCost, tr.MaxContainerCost())

		for range tr.PreOrder() {
			t.Fatal("nil trie has no nodes")
		}
	})
}

func TestWithMaxContainerCost(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2048, New[int](WithMaxContainerCost(2048)).MaxContainerCost())
	assert.Equal(t, DefaultMaxContainerCost, New[int]().MaxContainerCost())

	assert.Panics(t, func() { WithMaxContainerCost(0) })
	assert.Panics(t, func() { WithMaxContainerCost(-1) })
}

func TestTenPaths(t *testing.T) {
	t.Parallel()

	for _, cost := range costs {
		t.Run(fmt.Sprintf("cost_%d", cost), func(t *testing.T) {
			t.Parallel()
			tr := New[int](WithMaxContainerCost(cost))

			for _, tt := range tenPaths {
				tr.Insert(tt.key, tt.val)
			}

			require.Equal(t, 10, tr.Count())
			require.Equal(t, 10, tr.Size())

			for _, tt := range tenPaths {
				val, ok := tr.Get(tt.key)
				require.True(t, ok, tt.key)
				require.Equal(t, tt.val, val, tt.key)
			}

			// prefixes of stored keys are not stored keys
			for _, miss := range []string{"", "tl", "tl/", "tl/emails", "tl/emails/index"} {
				_, ok := tr.Get(miss)
				assert.False(t, ok, miss)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	keys := random.Paths(newPRNG(), workLoadN())

	for _, cost := range costs {
		t.Run(fmt.Sprintf("cost_%d", cost), func(t *testing.T) {
			t.Parallel()
			tr := New[int](WithMaxContainerCost(cost))

			for i, k := range keys {
				tr.Insert(k, i)
			}

			require.Equal(t, len(keys), tr.Count())
			require.Equal(t, len(keys), tr.Size())

			for i, k := range keys {
				val, ok := tr.Get(k)
				require.True(t, ok, k)
				require.Equal(t, i, val, k)
			}
		})
	}
}

func TestOverwrite(t *testing.T) {
	t.Parallel()
	keys := random.Paths(newPRNG(), workLoadN())

	for _, cost := range costs {
		tr := New[int](WithMaxContainerCost(cost))
		for i, k := range keys {
			tr.Insert(k, i)
		}
		before := tr.Count()

		for i, k := range keys {
			tr.Insert(k, -i)
		}

		require.Equal(t, before, tr.Count(), "cost %d", cost)
		require.Equal(t, before, tr.Size(), "cost %d", cost)

		for i, k := range keys {
			val, ok := tr.Get(k)
			require.True(t, ok)
			require.Equal(t, -i, val)
		}
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	keys := random.Paths(newPRNG(), workLoadN())

	for _, cost := range costs {
		t.Run(fmt.Sprintf("cost_%d", cost), func(t *testing.T) {
			t.Parallel()
			tr := New[int](WithMaxContainerCost(cost))
			for i, k := range keys {
				tr.Insert(k, i)
			}

			// delete every second key
			for i, k := range keys {
				if i%2 == 1 {
					continue
				}
				before := tr.Count()

				val, ok := tr.GetAndDelete(k)
				require.True(t, ok, k)
				require.Equal(t, i, val)
				require.Equal(t, before-1, tr.Count(), k)

				_, ok = tr.Get(k)
				require.False(t, ok, k)

				// again, no-op
				tr.Delete(k)
				require.Equal(t, before-1, tr.Count(), k)
			}

			require.Equal(t, len(keys)/2, tr.Count())
			require.Equal(t, tr.Count(), tr.Size())

			for i, k := range keys {
				val, ok := tr.Get(k)
				if i%2 == 0 {
					require.False(t, ok, k)
					continue
				}
				require.True(t, ok, k)
				require.Equal(t, i, val)
			}

			// missing key, no-op
			tr.Delete("no/such/key.js")
			require.Equal(t, len(keys)/2, tr.Size())
		})
	}
}

func TestEmptyKey(t *testing.T) {
	t.Parallel()

	for _, cost := range costs {
		tr := New[string](WithMaxContainerCost(cost))
		tr.Insert("", "root")

		val, ok := tr.Get("")
		require.True(t, ok)
		require.Equal(t, "root", val)

		for _, tt := range tenPaths {
			tr.Insert(tt.key, "x")
		}

		val, ok = tr.Get("")
		require.True(t, ok, "cost %d", cost)
		require.Equal(t, "root", val)
		require.Equal(t, 11, tr.Count())

		tr.Delete("")
		_, ok = tr.Get("")
		require.False(t, ok)
		require.Equal(t, 10, tr.Count())
	}
}

func TestBurstingTransparency(t *testing.T) {
	t.Parallel()
	prng := newPRNG()

	// short keys over a tiny alphabet, many shared prefixes
	keys := make([]string, 0, workLoadN())
	for range workLoadN() {
		keys = append(keys, random.Key(prng))
	}

	tries := make([]*Trie[int], 0, len(costs))
	for _, cost := range costs {
		tr := New[int](WithMaxContainerCost(cost))
		for i, k := range keys {
			tr.Insert(k, i)
			if i%3 == 0 {
				tr.Delete(keys[i/2])
			}
		}
		tries = append(tries, tr)
	}

	want := tries[len(tries)-1]
	for i, tr := range tries[:len(tries)-1] {
		require.Equal(t, want.Count(), tr.Count(), "cost %d", costs[i])
		require.Equal(t, tr.Count(), tr.Size(), "cost %d", costs[i])

		for _, k := range keys {
			wantVal, wantOk := want.Get(k)
			gotVal, gotOk := tr.Get(k)
			require.Equal(t, wantOk, gotOk, "cost %d, key %q", costs[i], k)
			require.Equal(t, wantVal, gotVal, "cost %d, key %q", costs[i], k)
		}
	}
}

func TestInvalidKeys(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"with space",
		"grüße",
		"tab\there",
		"new\nline",
		"tl/emails/ü.js",
		"ü",
	}

	for _, cost := range costs {
		tr := New[int](WithMaxContainerCost(cost))
		for _, tt := range tenPaths {
			tr.Insert(tt.key, tt.val)
		}

		for _, k := range invalid {
			tr.Insert(k, 666)
			_, ok := tr.Get(k)
			require.False(t, ok, "cost %d, key %q", cost, k)

			tr.Delete(k)
		}

		require.Equal(t, 10, tr.Count(), "cost %d", cost)
		require.Equal(t, 10, tr.Size(), "cost %d", cost)
	}
}

func TestLargeDataset(t *testing.T) {
	t.Parallel()

	const n = 54_000
	keys := random.Paths(newPRNG(), n)

	tr := New[int](WithMaxContainerCost(2048))
	for i, k := range keys {
		tr.Insert(k, i)
	}

	// two well known keys, outside of the generated key space
	tr.Insert("known/tl/emails/transactional/partials/footer.js", 4711)
	tr.Insert("known/static/img/logo.png", 815)

	require.Equal(t, n+2, tr.Count())
	require.Equal(t, n+2, tr.Size())

	val, ok := tr.Get("known/tl/emails/transactional/partials/footer.js")
	require.True(t, ok)
	require.Equal(t, 4711, val)

	val, ok = tr.Get("known/static/img/logo.png")
	require.True(t, ok)
	require.Equal(t, 815, val)

	// spot checks
	for i := 0; i < n; i += 997 {
		val, ok := tr.Get(keys[i])
		require.True(t, ok, keys[i])
		require.Equal(t, i, val)
	}

	s := tr.Stats()
	assert.Greater(t, s.Subtries, 0, "must have burst")
	assert.Greater(t, s.Depth, 1)
}

// no t.Parallel, AllocsPerRun counts the allocations of all goroutines
func TestLongSharedPrefix(t *testing.T) {
	n := 20 * workLoadN()
	prefix := strings.Repeat("a/", n/2)

	tr := New[int](WithMaxContainerCost(1))
	keys := []string{
		prefix + "x.js",
		prefix + "y.js",
		prefix,
		prefix[:n/2],
	}
	for i, key := range keys {
		tr.Insert(key, i)
	}

	for i, key := range keys {
		got, ok := tr.Get(key)
		require.True(t, ok, "key with len %d", len(key))
		assert.Equal(t, i, got)
	}

	assert.Equal(t, len(keys), tr.Size())
	assert.Equal(t, len(keys), tr.Count())
	assert.GreaterOrEqual(t, tr.Depth(), n+1)

	// the stats walk must not build a path per node
	allocs := testing.AllocsPerRun(5, func() { _ = tr.Count() })
	assert.Less(t, allocs, float64(100), "allocs per Count on depth %d", tr.Depth())

	_, ok := tr.GetAndDelete(prefix + "x.js")
	assert.True(t, ok)
	assert.Equal(t, len(keys)-1, tr.Count())
}

func TestClone(t *testing.T) {
	t.Parallel()
	tr := New[int](WithMaxContainerCost(16))
	for _, tt := range tenPaths {
		tr.Insert(tt.key, tt.val)
	}

	clone := tr.Clone()
	require.Equal(t, tr.DumpString(), clone.DumpString())
	require.Equal(t, tr.MaxContainerCost(), clone.MaxContainerCost())

	// diverge
	clone.Insert("tl/index.js", 100)
	clone.Delete("tl/emails/index.js")
	clone.Insert("tl/new.js", 11)

	val, ok := tr.Get("tl/index.js")
	assert.True(t, ok)
	assert.Equal(t, 10, val)

	_, ok = tr.Get("tl/emails/index.js")
	assert.True(t, ok)

	_, ok = tr.Get("tl/new.js")
	assert.False(t, ok)

	assert.Equal(t, 10, tr.Count())
	assert.Equal(t, 10, clone.Count())
	assert.Equal(t, 10, clone.Size())
}

func TestCloneWithCloner(t *testing.T) {
	t.Parallel()
	tr := new(Trie[*MyInt])

	for i, tt := range tenPaths {
		v := MyInt(i)
		tr.Insert(tt.key, &v)
	}

	clone := tr.Clone()

	for _, tt := range tenPaths {
		orig, _ := tr.Get(tt.key)
		dup, _ := clone.Get(tt.key)

		assert.Equal(t, *orig, *dup)
		assert.NotSame(t, orig, dup, "deep copy expected")
	}
}

func TestCloneShallowWithoutCloner(t *testing.T) {
	t.Parallel()
	tr := new(Trie[*int])
	v := 42
	tr.Insert("a", &v)

	clone := tr.Clone()
	got, _ := clone.Get("a")
	assert.Same(t, &v, got, "values without Cloner are copied as is")
}
