// Package cache provides a concurrency-safe keyed cache used to memoize
// parser strategies per value type.
package cache

import (
	"sync"
	"sync/atomic"
)

// Cache maps keys to values. The zero value is ready to use.
//
// Clear swaps in a fresh map instead of deleting entries one by one, so a
// reader racing with Clear observes either the old contents or the new empty
// map, never a partially cleared one.
type Cache[K comparable, V any] struct {
	m atomic.Pointer[sync.Map] // map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	c := &Cache[K, V]{}
	c.m.Store(new(sync.Map))
	return c
}

func (c *Cache[K, V]) entries() *sync.Map {
	if m := c.m.Load(); m != nil {
		return m
	}
	c.m.CompareAndSwap(nil, new(sync.Map))
	return c.m.Load()
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries().Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Set stores value for key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.entries().Store(key, value)
}

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores and returns value. loaded reports whether the value was already there.
// Concurrent callers for the same key all receive the same surviving value.
func (c *Cache[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := c.entries().LoadOrStore(key, value)
	return v.(V), loaded
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.m.Store(new(sync.Map))
}

// Len returns the number of entries. It walks the map and is meant for tests
// and diagnostics.
func (c *Cache[K, V]) Len() int {
	n := 0
	c.entries().Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
