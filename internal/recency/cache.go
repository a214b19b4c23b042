// Package recency tracks the most recently opened documents. The cache
// is the only cross-query state the ranking engine carries; it lives as
// long as the process and is never persisted.
package recency

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when no capacity is configured.
const DefaultCapacity = 4

// Cache is a bounded, ordered set of recently visited document IDs,
// newest first. It holds no duplicates and never exceeds its capacity.
//
// Add is called from the host's document-open notifier, which runs
// outside any Rank call, so every operation is serialized by a mutex.
type Cache struct {
	mu  sync.Mutex
	cap int
	lru *lru.Cache[string, struct{}]
}

// New creates an empty cache. A capacity of zero (or less) yields a
// cache that stays empty after any Add.
func New(capacity int) *Cache {
	c := &Cache{}
	c.setCapacity(capacity)
	return c
}

// setCapacity swaps the backing LRU. Callers hold c.mu (or own c
// exclusively, as in New).
func (c *Cache) setCapacity(capacity int) {
	if capacity <= 0 {
		c.cap = 0
		c.lru = nil
		return
	}
	// Keep the newest entries when shrinking.
	var keep []string
	if c.lru != nil {
		keep = c.lru.Keys() // oldest first
		if len(keep) > capacity {
			keep = keep[len(keep)-capacity:]
		}
	}
	backing, err := lru.New[string, struct{}](capacity)
	if err != nil {
		// Unreachable: lru.New only fails for non-positive sizes.
		panic(err)
	}
	for _, id := range keep {
		backing.Add(id, struct{}{})
	}
	c.cap = capacity
	c.lru = backing
}

// Add records a visit to id, moving it to the front and evicting the
// oldest entry when the cache is full. Adding the same ID repeatedly is
// idempotent apart from refreshing its position.
func (c *Cache) Add(id string) {
	if id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return
	}
	c.lru.Add(id, struct{}{})
}

// Contains reports whether id is currently cached.
func (c *Cache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return false
	}
	return c.lru.Contains(id)
}

// List returns a copy of the cached IDs, newest first.
func (c *Cache) List() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return nil
	}
	keys := c.lru.Keys() // oldest first
	out := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		out = append(out, keys[i])
	}
	return out
}

// Set returns the cached IDs as a set for membership checks during
// categorization.
func (c *Cache) Set() map[string]struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	set := make(map[string]struct{})
	if c.lru == nil {
		return set
	}
	for _, id := range c.lru.Keys() {
		set[id] = struct{}{}
	}
	return set
}

// Len returns the number of cached IDs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Capacity returns the configured capacity.
func (c *Cache) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cap
}

// Resize changes the capacity, dropping the oldest entries when
// shrinking. Growing never changes the contents.
func (c *Cache) Resize(capacity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if capacity == c.cap {
		return
	}
	c.setCapacity(capacity)
}

// Clear removes every entry without changing the capacity.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lru != nil {
		c.lru.Purge()
	}
}
