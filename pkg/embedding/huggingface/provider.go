package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"motherlanka-be/pkg/embedding"
)

const DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"

// HuggingFaceProvider calls the feature-extraction pipeline of the HF
// inference router. Both pooled and per-token responses are accepted.
type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type featureExtractionRequest struct {
	Inputs  string         `json:"inputs"`
	Options requestOptions `json:"options"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

func NewHuggingFaceProvider(apiKey, baseURL, model string, timeout time.Duration) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HuggingFaceProvider) Model() string {
	return p.model
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, text string) (*embedding.EmbeddingResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: HF_API_KEY is not configured", embedding.ErrEmbeddingUnavailable)
	}

	jsonData, err := json.Marshal(featureExtractionRequest{
		Inputs:  text,
		Options: requestOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", embedding.ErrEmbeddingUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", embedding.ErrEmbeddingUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", embedding.ErrEmbeddingUnavailable, resp.StatusCode, truncate(string(body), 200))
	}

	decoded := embedding.DecodeResponse(body)
	if decoded.Shape == embedding.ShapeUnrecognized {
		return nil, fmt.Errorf("%w: unrecognized response shape", embedding.ErrEmbeddingUnavailable)
	}

	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: decoded.Vector()},
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
