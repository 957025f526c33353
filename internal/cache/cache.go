// Package cache provides the in-memory session caches used by the read services.
package cache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/courtside/pickem/internal/metrics"
)

// SeasonKey identifies a standings partition
type SeasonKey struct {
	Season     int
	Postseason bool
}

func (k SeasonKey) String() string {
	return fmt.Sprintf("%d-%t", k.Season, k.Postseason)
}

// Cache is a typed memoization cache with explicit invalidation.
// A size of 0 keeps every entry and a ttl of 0 never expires entries, which
// gives memoization for the lifetime of the process.
type Cache[K comparable, V any] struct {
	name string
	lru  *expirable.LRU[K, V]
}

// New creates a cache; name labels its hit and miss metrics
func New[K comparable, V any](name string, size int, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		name: name,
		lru:  expirable.NewLRU[K, V](size, nil, ttl),
	}
}

// Get returns the cached value for key
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		metrics.CacheHits.WithLabelValues(c.name).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(c.name).Inc()
	}
	return v, ok
}

// Peek returns the cached value without touching recency or metrics
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	return c.lru.Peek(key)
}

// Set stores value under key, replacing any previous entry
func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// Invalidate removes key and reports whether it was present
func (c *Cache[K, V]) Invalidate(key K) bool {
	return c.lru.Remove(key)
}

// Purge removes every entry
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached entries
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Name returns the cache's metric label
func (c *Cache[K, V]) Name() string {
	return c.name
}
