package huggingface

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

func TestHuggingFaceProvider_Generate(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReply  string
		wantStatus int
		wantEmpty  bool
	}{
		{
			name:      "trims reply",
			status:    http.StatusOK,
			body:      `{"id":"c1","object":"chat.completion","model":"mistral","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Ella is lovely.\n"}}]}`,
			wantReply: "Ella is lovely.",
		},
		{
			name:       "upstream error status",
			status:     http.StatusBadGateway,
			body:       `{"error":{"message":"bad gateway"}}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no choices",
			status:     http.StatusOK,
			body:       `{"choices":[]}`,
			wantStatus: http.StatusOK,
			wantEmpty:  true,
		},
		{
			name:       "whitespace only reply",
			status:     http.StatusOK,
			body:       `{"id":"c1","object":"chat.completion","model":"mistral","choices":[{"index":0,"finish_reason":"length","message":{"role":"assistant","content":"   "}}]}`,
			wantStatus: http.StatusOK,
			wantEmpty:  true,
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			body:       `{"error":{"message":"model overloaded"}}`,
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Model       string        `json:"model"`
				Messages    []llm.Message `json:"messages"`
				MaxTokens   int           `json:"max_tokens"`
				Temperature float64       `json:"temperature"`
			}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewHuggingFaceProvider("hf_test", srv.URL, "mistral", time.Second)
			reply, err := p.Generate(context.Background(), "Where is Ella?", llm.WithMaxTokens(220), llm.WithTemperature(0.3))

			assert.Equal(t, "mistral", got.Model)
			assert.Equal(t, 220, got.MaxTokens)
			assert.InDelta(t, 0.3, got.Temperature, 1e-9)
			require.Len(t, got.Messages, 1)
			assert.Equal(t, "user", got.Messages[0].Role)

			if tt.wantReply != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantReply, reply)
				return
			}

			var genErr *llm.GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, "huggingface", genErr.Provider)
			assert.Equal(t, tt.wantStatus, genErr.StatusCode)
			if tt.wantEmpty {
				assert.ErrorIs(t, err, llm.ErrEmptyReply)
			}
		})
	}
}

func TestHuggingFaceProvider_MissingKey(t *testing.T) {
	p := NewHuggingFaceProvider("", "http://127.0.0.1:1", "m", time.Second)
	_, err := p.Generate(context.Background(), "hi")

	var genErr *llm.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "huggingface", genErr.Provider)
	assert.Equal(t, 0, genErr.StatusCode)
}

func TestHuggingFaceProvider_Name(t *testing.T) {
	p := NewHuggingFaceProvider("hf_test", "", "mistral", time.Second)
	assert.Equal(t, "huggingface", p.Name())
}
