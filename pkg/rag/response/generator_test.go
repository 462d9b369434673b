package response

import (
	"context"
	"errors"
	"testing"
	"time"

	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply string
	err   error
	opts  llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	for _, o := range options {
		o(&f.opts)
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (f *fakeLLM) Name() string {
	return "fake"
}

func TestGenerator_Answer(t *testing.T) {
	failure := &llm.GenerationError{Provider: "huggingface", StatusCode: 503, Err: errors.New("loading")}

	tests := []struct {
		name         string
		reply        string
		err          error
		hasSources   bool
		wantText     string
		wantDegraded DegradedReason
		wantProvider string
	}{
		{name: "success is trimmed", reply: "  Visit Ella.  ", wantText: "Visit Ella."},
		{name: "failure with sources", err: failure, hasSources: true, wantText: DegradedWithSourcesMessage, wantDegraded: GenerationFailed, wantProvider: "huggingface"},
		{name: "failure without sources", err: failure, wantText: UnavailableMessage, wantDegraded: GenerationFailed},
		{name: "whitespace reply is a failure", reply: "   ", hasSources: true, wantText: DegradedWithSourcesMessage, wantDegraded: GenerationFailed, wantProvider: "fake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeLLM{reply: tt.reply, err: tt.err}
			g := NewGenerator(provider, logger.NewNopLogger(), time.Second, llm.WithMaxTokens(220), llm.WithTemperature(0.3))

			reply := g.Answer(context.Background(), "prompt", tt.hasSources)

			assert.Equal(t, tt.wantText, reply.Text)
			assert.Equal(t, tt.wantDegraded, reply.Degraded)
			assert.Equal(t, 220, provider.opts.MaxTokens)
			if tt.wantDegraded != NotDegraded {
				require.Error(t, reply.Err)
				var genErr *llm.GenerationError
				require.True(t, errors.As(reply.Err, &genErr))
				if tt.wantProvider != "" {
					assert.Equal(t, tt.wantProvider, genErr.Provider)
				}
			} else {
				assert.NoError(t, reply.Err)
			}
		})
	}
}

func TestDegradedMessagesDiffer(t *testing.T) {
	assert.NotEqual(t, DegradedWithSourcesMessage, UnavailableMessage)

	r := Unavailable(errors.New("db down"))
	assert.Equal(t, UnavailableMessage, r.Text)
	assert.Equal(t, AssistantUnavailable, r.Degraded)
	assert.True(t, r.IsDegraded())
}
