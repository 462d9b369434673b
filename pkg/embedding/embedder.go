package embedding

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"motherlanka-be/internal/pkg/logger"
)

// ErrEmbeddingsDisabled is logged when HF_EMBEDDINGS_DISABLED short-circuits a call.
var ErrEmbeddingsDisabled = errors.New("embeddings disabled")

const embedderModule = "EMBEDDER"

// Embedder wraps a provider with the retrieval-side contract: Embed never
// fails, it returns an empty vector when anything goes wrong. Only non-empty
// vectors are cached. Chunk vectors and query vectors go to separate caches
// since query text comes from the public chat endpoint.
type Embedder struct {
	provider   EmbeddingProvider
	cache      Cache
	queryCache Cache
	namespace  string
	disabled  bool
	timeout   time.Duration
	logger    logger.ILogger

	// dimension is fixed by the first successful vector; later vectors of
	// another width are rejected.
	dimension atomic.Int64
}

type EmbedderOption func(*Embedder)

func WithCache(cache Cache, namespace string) EmbedderOption {
	return func(e *Embedder) {
		e.cache = cache
		e.namespace = namespace
	}
}

// WithQueryCache sets the cache used by EmbedQuery. It should bound its
// entries. Without it query vectors are not cached.
func WithQueryCache(cache Cache) EmbedderOption {
	return func(e *Embedder) {
		e.queryCache = cache
	}
}

func WithTimeout(d time.Duration) EmbedderOption {
	return func(e *Embedder) {
		e.timeout = d
	}
}

func WithDisabled(disabled bool) EmbedderOption {
	return func(e *Embedder) {
		e.disabled = disabled
	}
}

func NewEmbedder(provider EmbeddingProvider, log logger.ILogger, opts ...EmbedderOption) *Embedder {
	e := &Embedder{
		provider: provider,
		logger:   log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports whether Embed can ever return a non-empty vector.
func (e *Embedder) Enabled() bool {
	return !e.disabled && e.provider != nil
}

// Dimension is the width of vectors produced so far, 0 before the first success.
func (e *Embedder) Dimension() int {
	return int(e.dimension.Load())
}

// Embed embeds index content and caches it in the chunk cache.
func (e *Embedder) Embed(ctx context.Context, text string) []float32 {
	return e.embed(ctx, text, e.cache)
}

// EmbedQuery embeds a user query and caches it in the query cache only.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) []float32 {
	return e.embed(ctx, text, e.queryCache)
}

func (e *Embedder) embed(ctx context.Context, text string, cache Cache) []float32 {
	if !e.Enabled() {
		e.logger.Debug(embedderModule, "Embedding skipped", map[string]interface{}{
			"reason": ErrEmbeddingsDisabled.Error(),
		})
		return []float32{}
	}

	var key string
	if cache != nil {
		key = CacheKey(e.namespace, text)
		if vec, ok := cache.Get(ctx, key); ok && len(vec) > 0 {
			return vec
		}
	}

	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	res, err := e.provider.Generate(callCtx, text)
	if err != nil {
		e.logger.Warn(embedderModule, "Embedding unavailable", map[string]interface{}{
			"error":    err.Error(),
			"text_len": len(text),
		})
		return []float32{}
	}
	if res == nil || len(res.Embedding.Values) == 0 {
		e.logger.Warn(embedderModule, "Embedding provider returned an empty vector", nil)
		return []float32{}
	}

	vec := res.Embedding.Values
	width := int64(len(vec))
	if !e.dimension.CompareAndSwap(0, width) && e.dimension.Load() != width {
		e.logger.Warn(embedderModule, "Embedding dimension changed, vector dropped", map[string]interface{}{
			"expected": e.dimension.Load(),
			"got":      width,
		})
		return []float32{}
	}

	if cache != nil {
		cache.Set(ctx, key, vec)
	}
	return vec
}
