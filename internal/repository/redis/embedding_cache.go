package redis

import (
	"context"
	"encoding/json"
	"time"

	"motherlanka-be/internal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// EmbeddingCache shares vectors between instances. A zero ttl keeps entries
// until Redis evicts them.
type EmbeddingCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewEmbeddingCache(rdb *goredis.Client, ttl time.Duration, log logger.ILogger) *EmbeddingCache {
	return &EmbeddingCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *EmbeddingCache) Get(ctx context.Context, key string) ([]float32, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.logger.Warn("EMBEDDING_CACHE", "Redis get failed", map[string]interface{}{"error": err.Error()})
		}
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil || len(vec) == 0 {
		return nil, false
	}
	return vec, true
}

func (c *EmbeddingCache) Set(ctx context.Context, key string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("EMBEDDING_CACHE", "Redis set failed", map[string]interface{}{"error": err.Error()})
	}
}
