package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores query vectors keyed by CacheKey. Implementations are
// best-effort: a failing backend reports a miss and drops writes.
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Set(ctx context.Context, key string, vector []float32)
}

// CacheKey scopes a text hash by model so a shared cache never mixes
// vectors of different dimensionality.
func CacheKey(namespace, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "emb:" + namespace + ":" + hex.EncodeToString(sum[:])
}
