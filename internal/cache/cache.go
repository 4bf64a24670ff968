// Package cache provides a small generic TTL cache.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Thread-safe cache with per-entry TTL expiration. Expired entries
// are dropped lazily on read; there is no background sweeper, so the
// cache is only suitable for small, bounded key sets.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Retrieve a value, reporting whether it is present and fresh.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		// a writer may have refreshed the entry after the read lock
		// was dropped; only evict what is still stale
		c.mu.Lock()
		if cur, present := c.entries[key]; present && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		var zero T
		return zero, false
	}
	return e.value, true
}

// Store a value under key for the cache's TTL.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Drop a key immediately.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
