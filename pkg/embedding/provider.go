package embedding

import (
	"context"
	"errors"
)

// ErrEmbeddingUnavailable marks every failure of a remote embedding call:
// transport, auth, non-200 status or an unrecognized response shape.
var ErrEmbeddingUnavailable = errors.New("embedding unavailable")

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) (*EmbeddingResponse, error)
}
