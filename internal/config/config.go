package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Keys     APIKeys
	Ai       AIConfig
	Rag      RagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	RagLogFilePath     string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	OtelEnabled        bool
	OtelEndpoint       string
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type AuthConfig struct {
	JwtSecret   string
	TokenIssuer string
}

type APIKeys struct {
	HuggingFace string
	OpenAI      string
}

type AIConfig struct {
	EmbeddingProvider  string // "huggingface" or "ollama"
	EmbeddingModel     string
	EmbeddingsDisabled bool
	EmbeddingCache     string // "memory", "redis" or "none"
	QueryCacheTTL      time.Duration
	EmbeddingTimeout   time.Duration
	InferenceURL       string
	OllamaBaseURL      string
	OllamaModel        string
	LLMProvider        string // "huggingface", "openai" or "ollama"
	LLMModel           string
	LLMBaseURL         string
	LLMMaxTokens       int
	LLMTemperature     float64
	LLMTimeout         time.Duration
}

type RagConfig struct {
	TopK               int
	RebuildConcurrency int
	RebuildTopic       string
	ContentSubject     string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			RagLogFilePath:     getEnv("RAG_LOG_FILE_PATH", "logs/llm_rag.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", "file:data/motherlanka.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			TokenIssuer: getEnv("TOKEN_ISSUER", "motherlanka"),
		},
		Keys: APIKeys{
			HuggingFace: getEnv("HF_API_KEY", ""),
			OpenAI:      getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "huggingface"),
			EmbeddingModel:     getEnv("HF_EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
			EmbeddingsDisabled: getEnvAsBool("HF_EMBEDDINGS_DISABLED", false),
			EmbeddingCache:     getEnv("EMBEDDING_CACHE", "memory"),
			QueryCacheTTL:      getEnvAsSeconds("EMBEDDING_QUERY_CACHE_TTL_SECONDS", 600),
			EmbeddingTimeout:   getEnvAsSeconds("EMBEDDING_TIMEOUT_SECONDS", 30),
			InferenceURL:       getEnv("HF_INFERENCE_URL", "https://router.huggingface.co/hf-inference/models"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:        getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:        getEnv("LLM_PROVIDER", "huggingface"),
			LLMModel:           getEnv("HF_CHAT_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),
			LLMBaseURL:         getEnv("HF_ROUTER_URL", "https://router.huggingface.co/v1"),
			LLMMaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 220),
			LLMTemperature:     getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			LLMTimeout:         getEnvAsSeconds("LLM_TIMEOUT_SECONDS", 60),
		},
		Rag: RagConfig{
			TopK:               getEnvAsInt("RAG_TOP_K", 5),
			RebuildConcurrency: getEnvAsInt("RAG_REBUILD_CONCURRENCY", 1),
			RebuildTopic:       getEnv("RAG_REBUILD_TOPIC", "RAG_REBUILD_INDEX"),
			ContentSubject:     getEnv("CONTENT_EVENTS_SUBJECT", "events.content.>"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Second
}
