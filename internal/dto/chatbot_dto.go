package dto

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ChatSource struct {
	Type  string  `json:"type"`
	Title string  `json:"title"`
	RefId string  `json:"refId"`
	Score float64 `json:"score"`
}

// ChatResponse is always returned with 200 once the request validates.
// Error carries failure detail outside production only.
type ChatResponse struct {
	Reply   string       `json:"reply"`
	Sources []ChatSource `json:"sources"`
	Error   string       `json:"error,omitempty"`
}

type RagRebuildResponse struct {
	Ok       bool `json:"ok"`
	Chunks   int  `json:"chunks"`
	Embedded int  `json:"embedded"`
}

type RagRebuildQueuedResponse struct {
	Ok     bool `json:"ok"`
	Queued bool `json:"queued"`
}

type RagStatusResponse struct {
	Chunks             int64            `json:"chunks"`
	ByType             map[string]int64 `json:"by_type"`
	EmbeddingsEnabled  bool             `json:"embeddings_enabled"`
	EmbeddingDimension int              `json:"embedding_dimension"`
}

// RebuildIndexMessage is the internal bus payload for a queued rebuild.
type RebuildIndexMessage struct {
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}
