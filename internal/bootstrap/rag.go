package bootstrap

import (
	"context"
	"fmt"
	"log"

	"motherlanka-be/internal/config"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/repository/memory"
	rediscache "motherlanka-be/internal/repository/redis"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/pkg/embedding"
	"motherlanka-be/pkg/embedding/huggingface"
	"motherlanka-be/pkg/llm"
	"motherlanka-be/pkg/llm/factory"
	"motherlanka-be/pkg/rag/index"
	"motherlanka-be/pkg/rag/response"
	"motherlanka-be/pkg/rag/search"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Rag is the retrieval pipeline shared by the HTTP server and ragctl.
type Rag struct {
	UowFactory unitofwork.RepositoryFactory
	Embedder   *embedding.Embedder
	Indexer    *index.Indexer
	Retriever  *search.Retriever
	Generator  *response.Generator
	Logger     logger.ILogger

	redis *redis.Client
}

// NewRag wires the pipeline. Extra indexer options (the NATS notifier) are
// appended by the caller.
func NewRag(db *gorm.DB, cfg *config.Config, ragLogger logger.ILogger, indexOpts ...index.Option) (*Rag, error) {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	r := &Rag{UowFactory: uowFactory, Logger: ragLogger}

	embeddingProvider := newEmbeddingProvider(cfg)
	embedderOpts := []embedding.EmbedderOption{
		embedding.WithTimeout(cfg.Ai.EmbeddingTimeout),
		embedding.WithDisabled(cfg.Ai.EmbeddingsDisabled),
	}

	// Chunk vectors never expire. Query vectors live for QueryCacheTTL, and a
	// zero TTL leaves them uncached.
	queryTTL := cfg.Ai.QueryCacheTTL
	switch cfg.Ai.EmbeddingCache {
	case "redis":
		r.redis = newRedisClient(cfg.App.RedisURL)
		if r.redis != nil {
			embedderOpts = append(embedderOpts, embedding.WithCache(
				rediscache.NewEmbeddingCache(r.redis, 0, ragLogger), embeddingNamespace(cfg)))
			if queryTTL > 0 {
				embedderOpts = append(embedderOpts, embedding.WithQueryCache(
					rediscache.NewEmbeddingCache(r.redis, queryTTL, ragLogger)))
			}
		}
	case "none":
	default:
		embedderOpts = append(embedderOpts, embedding.WithCache(memory.NewEmbeddingCache(), embeddingNamespace(cfg)))
		if queryTTL > 0 {
			embedderOpts = append(embedderOpts, embedding.WithQueryCache(memory.NewExpiringEmbeddingCache(queryTTL)))
		}
	}

	r.Embedder = embedding.NewEmbedder(embeddingProvider, ragLogger, embedderOpts...)
	log.Printf("[INFO] Using Embedding Provider: %s (%s), enabled=%t", cfg.Ai.EmbeddingProvider, embeddingNamespace(cfg), r.Embedder.Enabled())

	llmProvider, err := factory.NewLLMProvider(llmConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("initializing LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	opts := append([]index.Option{index.WithConcurrency(cfg.Rag.RebuildConcurrency)}, indexOpts...)
	r.Indexer = index.NewIndexer(uowFactory, r.Embedder, ragLogger, opts...)
	r.Retriever = search.NewRetriever(r.Indexer, r.Embedder, ragLogger)
	r.Generator = response.NewGenerator(llmProvider, ragLogger, cfg.Ai.LLMTimeout,
		llm.WithMaxTokens(cfg.Ai.LLMMaxTokens),
		llm.WithTemperature(cfg.Ai.LLMTemperature),
	)

	return r, nil
}

func (r *Rag) Close() {
	if r.redis != nil {
		_ = r.redis.Close()
	}
}

func newEmbeddingProvider(cfg *config.Config) embedding.EmbeddingProvider {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Ai.EmbeddingTimeout)
	}
	return huggingface.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.InferenceURL, cfg.Ai.EmbeddingModel, cfg.Ai.EmbeddingTimeout)
}

// Cached vectors are only comparable within one model.
func embeddingNamespace(cfg *config.Config) string {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		return "ollama/" + cfg.Ai.OllamaModel
	}
	return cfg.Ai.EmbeddingModel
}

func llmConfig(cfg *config.Config) factory.Config {
	c := factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.LLMBaseURL,
		APIKey:   cfg.Keys.HuggingFace,
		Timeout:  cfg.Ai.LLMTimeout,
	}
	switch cfg.Ai.LLMProvider {
	case "openai":
		c.APIKey = cfg.Keys.OpenAI
		if c.BaseURL == huggingFaceRouterURL {
			c.BaseURL = ""
		}
	case "ollama":
		c.APIKey = ""
		c.BaseURL = cfg.Ai.OllamaBaseURL
	}
	return c
}

const huggingFaceRouterURL = "https://router.huggingface.co/v1"

func newRedisClient(url string) *redis.Client {
	if url == "" {
		log.Printf("[WARN] EMBEDDING_CACHE=redis but REDIS_URL is empty, cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return rdb
}
