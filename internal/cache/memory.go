// Package cache provides a small in-memory LRU cache with TTL support,
// used to memoize fetched payloads across pipeline stages. The batching
// layer itself never caches; this sits strictly above it.
package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// entry represents a cached item with expiration
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// MemoryCache is an in-memory LRU cache with TTL support
type MemoryCache[V any] struct {
	cache *lru.Cache[string, *entry[V]]
	ttl   time.Duration
	mu    sync.RWMutex
}

// New creates a new in-memory cache. A non-positive ttl means entries
// never expire.
func New[V any](size int, ttl time.Duration) (*MemoryCache[V], error) {
	c, err := lru.New[string, *entry[V]](size)
	if err != nil {
		return nil, err
	}

	mc := &MemoryCache[V]{
		cache: c,
		ttl:   ttl,
	}

	if ttl > 0 {
		go mc.cleanupLoop()
	}

	return mc, nil
}

// Get retrieves a value from the cache
func (mc *MemoryCache[V]) Get(key string) (V, bool) {
	mc.mu.RLock()
	e, ok := mc.cache.Get(key)
	mc.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if mc.ttl > 0 && time.Now().After(e.expiresAt) {
		mc.mu.Lock()
		mc.cache.Remove(key)
		mc.mu.Unlock()
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores a value in the cache
func (mc *MemoryCache[V]) Set(key string, value V) {
	e := &entry[V]{
		value:     value,
		expiresAt: time.Now().Add(mc.ttl),
	}

	mc.mu.Lock()
	mc.cache.Add(key, e)
	mc.mu.Unlock()
}

// Len returns the number of cached entries, expired ones included
func (mc *MemoryCache[V]) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.cache.Len()
}

// cleanupLoop periodically removes expired entries
func (mc *MemoryCache[V]) cleanupLoop() {
	ticker := time.NewTicker(mc.ttl / 2)
	defer ticker.Stop()

	for range ticker.C {
		mc.removeExpired()
	}
}

// removeExpired removes all expired entries from the cache
func (mc *MemoryCache[V]) removeExpired() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := time.Now()
	for _, key := range mc.cache.Keys() {
		e, ok := mc.cache.Peek(key)
		if ok && now.After(e.expiresAt) {
			mc.cache.Remove(key)
		}
	}
}
