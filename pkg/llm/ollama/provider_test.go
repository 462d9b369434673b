package ollama

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

func TestOllamaProvider_Generate(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       string
		wantStatus int
		wantEmpty  bool
	}{
		{name: "reply trimmed", status: http.StatusOK, body: `{"message":{"role":"assistant","content":" Go to Ella. "},"done":true}`, want: "Go to Ella."},
		{name: "blank reply", status: http.StatusOK, body: `{"message":{"role":"assistant","content":"  "},"done":true}`, wantStatus: http.StatusOK, wantEmpty: true},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chat", r.URL.Path)

				var req ollamaChatRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.False(t, req.Stream)
				assert.Equal(t, "llama3", req.Model)
				require.NotNil(t, req.Options)
				assert.Equal(t, 220, req.Options.NumPredict)
				require.Len(t, req.Messages, 1)
				assert.Equal(t, "user", req.Messages[0].Role)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewOllamaProvider(srv.URL+"/", "llama3", time.Second)
			got, err := p.Generate(context.Background(), "Where should I go?", llm.WithMaxTokens(220))

			if tt.want != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var genErr *llm.GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, "ollama", genErr.Provider)
			assert.Equal(t, tt.wantStatus, genErr.StatusCode)
			if tt.wantEmpty {
				assert.True(t, errors.Is(err, llm.ErrEmptyReply))
			}
		})
	}
}
