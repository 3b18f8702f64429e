package utils

import (
	"context"
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a small in-process cache of timestamped entries. Handlers run
// concurrently, so the read-modify-write is mutex-guarded.
type TTLCache[V any] struct {
	mu      sync.Mutex
	entries map[string]cacheEntry[V]
	now     func() time.Time
}

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{
		entries: make(map[string]cacheEntry[V]),
		now:     time.Now,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (c *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// GetOrRefresh returns the cached value for key, calling fetch and caching
// its result for ttl on a miss or an expired entry. Fetch errors are not
// cached.
func (c *TTLCache[V]) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, value, ttl)
	return value, nil
}
