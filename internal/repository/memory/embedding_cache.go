package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// EmbeddingCache holds vectors in process memory. NewEmbeddingCache never
// expires entries and suits the bounded chunk corpus. Query vectors use
// NewExpiringEmbeddingCache.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache() *EmbeddingCache {
	return &EmbeddingCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// NewExpiringEmbeddingCache drops entries ttl after they are set. Expired
// entries are purged every ttl.
func NewExpiringEmbeddingCache(ttl time.Duration) *EmbeddingCache {
	return &EmbeddingCache{
		cache: cache.New(ttl, ttl),
	}
}

func (c *EmbeddingCache) Get(_ context.Context, key string) ([]float32, bool) {
	if x, found := c.cache.Get(key); found {
		return x.([]float32), true
	}
	return nil, false
}

func (c *EmbeddingCache) Set(_ context.Context, key string, vector []float32) {
	stored := make([]float32, len(vector))
	copy(stored, vector)
	c.cache.Set(key, stored, cache.DefaultExpiration)
}

func (c *EmbeddingCache) Len() int {
	return c.cache.ItemCount()
}
