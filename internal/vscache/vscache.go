// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vscache implements the post-vertex-shader cache (§4.4): a
// dense, index-keyed memoization of vertex shader outputs for the
// duration of one draw call. It is grounded on the teacher's
// github.com/gogpu/gg/internal/cache idiom (Get/Set/GetOrCreate over a
// generic value type), simplified from a soft-limit LRU map to a plain
// array indexed by vertexIndex-baseVertex, since the key space for one
// draw is a small, known-dense integer range rather than an unbounded
// cache that needs eviction.
package vscache

// Cache is a fixed-size, array-backed memoization table keyed by a
// dense non-negative integer (vertexIndex - baseVertex). Unlike a
// general-purpose LRU cache, entries are never evicted: the cache's
// lifetime is exactly one draw call. The table is an ordinary Go slice,
// not arena memory; it is dropped once the draw no longer references it.
type Cache[T any] struct {
	entries []entry[T]
}

type entry[T any] struct {
	valid bool
	value T
}

// New creates a cache sized to hold exactly `size` dense keys
// (0..size-1), all initially invalid.
func New[T any](size int) *Cache[T] {
	return &Cache[T]{entries: make([]entry[T], size)}
}

// Len returns the number of slots in the cache.
func (c *Cache[T]) Len() int { return len(c.entries) }

// Get returns the cached value at key and whether it is valid.
func (c *Cache[T]) Get(key int) (T, bool) {
	e := c.entries[key]
	return e.value, e.valid
}

// GetOrCreate returns the cached value at key, calling create and
// storing its result if the slot is not yet valid. create is invoked at
// most once per key for the lifetime of the Cache — this is the
// invariant spec.md §4.4 requires ("vertex shader invoked at most once
// per unique vertex index per draw").
func (c *Cache[T]) GetOrCreate(key int, create func() T) T {
	e := &c.entries[key]
	if !e.valid {
		e.value = create()
		e.valid = true
	}
	return e.value
}
