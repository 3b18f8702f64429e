package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache[V any]() (*TTLCache[V], *time.Time) {
	clock := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	cache := NewTTLCache[V]()
	cache.now = func() time.Time { return clock }
	return cache, &clock
}

func TestTTLCacheSetAndGet(t *testing.T) {
	cache, _ := newTestCache[string]()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("key", "value", time.Minute)
	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestTTLCacheExpiresEntries(t *testing.T) {
	cache, clock := newTestCache[int]()

	cache.Set("key", 42, time.Minute)
	*clock = clock.Add(59 * time.Second)
	_, ok := cache.Get("key")
	assert.True(t, ok)

	*clock = clock.Add(2 * time.Second)
	_, ok = cache.Get("key")
	assert.False(t, ok)
}

func TestTTLCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache[bool]()

	cache.Set("key", true, time.Minute)
	cache.Invalidate("key")
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestGetOrRefresh(t *testing.T) {
	cache, _ := newTestCache[string]()

	fetches := 0
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "fetched", nil
	}

	got, err := cache.GetOrRefresh(context.Background(), "key", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", got)
	assert.Equal(t, 1, fetches)

	// Second call is served from the cache.
	got, err = cache.GetOrRefresh(context.Background(), "key", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", got)
	assert.Equal(t, 1, fetches)
}

func TestGetOrRefreshDoesNotCacheErrors(t *testing.T) {
	cache, _ := newTestCache[string]()

	wantErr := errors.New("fetch failed")
	fetches := 0
	_, err := cache.GetOrRefresh(context.Background(), "key", time.Minute, func(ctx context.Context) (string, error) {
		fetches++
		return "", wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	_, err = cache.GetOrRefresh(context.Background(), "key", time.Minute, func(ctx context.Context) (string, error) {
		fetches++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}
