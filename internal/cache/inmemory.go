package cache

import (
	"context"
	"strings"
	"time"

	"github.com/letybo/ordering/internal/config"
	goCache "github.com/patrickmn/go-cache"
)

// InMemoryCache implements the Cache interface using github.com/patrickmn/go-cache
type InMemoryCache struct {
	cache *goCache.Cache
}

var _ Cache = (*InMemoryCache)(nil)

// NewInMemoryCache expires entries after cache.selection_ttl unless Set is
// given its own expiration
func NewInMemoryCache(cfg *config.Configuration) *InMemoryCache {
	return &InMemoryCache{
		cache: goCache.New(cfg.Cache.SelectionTTL, cfg.Cache.CleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	span := startSpan(ctx, "cache.get", key)
	v, ok := c.cache.Get(key)
	finishLookup(span, ok)
	return v, ok
}

// Set adds a value to the cache with the specified expiration
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	span := startSpan(ctx, "cache.put", key)
	defer finishWrite(span)

	if expiration == 0 {
		expiration = goCache.DefaultExpiration
	}
	c.cache.Set(key, value, expiration)
}

// Delete removes a key from the cache
func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	span := startSpan(ctx, "cache.remove", key)
	defer finishWrite(span)

	c.cache.Delete(key)
}

// DeleteByPrefix removes all keys with the given prefix
func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

// Flush removes all items from the cache
func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}

// ItemCount includes expired items not yet cleaned up
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
