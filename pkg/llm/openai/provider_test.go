package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motherlanka-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"cmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":" Visit Nine Arch Bridge. "}}]
		}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", srv.URL, "gpt-4o-mini", time.Second)
	reply, err := p.Generate(context.Background(), "What to see in Ella?", llm.WithMaxTokens(220), llm.WithTemperature(0.3))

	require.NoError(t, err)
	assert.Equal(t, "Visit Nine Arch Bridge.", reply)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.EqualValues(t, 220, got["max_tokens"])
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-bad", srv.URL, "gpt-4o-mini", time.Second)
	_, err := p.Generate(context.Background(), "hi")

	var genErr *llm.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "openai", genErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, genErr.StatusCode)
}
