// Package query implements the console's request-cache convention: every
// data fetch goes through a keyed cache with a TTL, concurrent fetches for
// the same key are collapsed into one, and an expired entry keeps serving
// while a single background refresh runs.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	fetchedAt time.Time
	ttl       time.Duration
}

func (e *entry) fresh(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// Fetcher loads the value for a cache key.
type Fetcher func(ctx context.Context) (any, error)

// Cache is a TTL request cache with single-flight fetch deduplication.
// Failed fetches are never cached; the last successful value wins.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	group      singleflight.Group
	defaultTTL time.Duration

	// now is swapped out in tests.
	now func() time.Time
}

// New creates a cache with the given default TTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the cached value for key, fetching with the default TTL.
func (c *Cache) Get(ctx context.Context, key string, fetch Fetcher) (any, error) {
	return c.GetTTL(ctx, key, c.defaultTTL, fetch)
}

// GetTTL returns the cached value for key. A fresh entry is returned as-is.
// A stale entry is returned immediately while one background refresh runs.
// A missing entry blocks on a single shared fetch. ttl <= 0 bypasses the
// cache entirely.
func (c *Cache) GetTTL(ctx context.Context, key string, ttl time.Duration, fetch Fetcher) (any, error) {
	if ttl <= 0 {
		return fetch(ctx)
	}

	c.mu.Lock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.Unlock()

	if ok && e.fresh(now) {
		return e.value, nil
	}

	if ok {
		// Stale: serve the old value, refresh once in the background.
		go c.refresh(context.WithoutCancel(ctx), key, ttl, fetch)
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, ttl)
		return v, nil
	})
	return v, err
}

// refresh runs at most one concurrent fetch per key; errors keep the stale
// entry in place.
func (c *Cache) refresh(ctx context.Context, key string, ttl time.Duration, fetch Fetcher) {
	c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, ttl)
		return v, nil
	})
}

func (c *Cache) store(key string, v any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = &entry{value: v, fetchedAt: c.now(), ttl: ttl}
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with prefix. An empty
// prefix clears the cache.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key joins request parameters into a cache key. Segments are separated by
// "/" so Invalidate can target a resource family by prefix.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}
