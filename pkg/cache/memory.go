package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process JSONCache. Values are stored encoded so callers never share decoded state.
type MemoryCache struct {
	cache *gocache.Cache
}

var _ JSONCache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache whose entries default to defaultTTL, purged every cleanupInterval.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *MemoryCache) GetJSON(_ context.Context, key string, dest any) error {
	val, found := c.cache.Get(key)
	if !found {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(val.([]byte), dest); err != nil {
		return fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return nil
}

func (c *MemoryCache) SetJSON(_ context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	c.cache.Set(key, data, expiration)
	return nil
}

// Flush removes every entry.
func (c *MemoryCache) Flush() {
	c.cache.Flush()
}
