package response

import (
	"context"
	"strings"
	"time"

	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/pkg/llm"
)

// Reply is the outcome of one generation attempt. Err is set whenever
// Degraded is not NotDegraded.
type Reply struct {
	Text     string
	Degraded DegradedReason
	Err      error
}

func (r Reply) IsDegraded() bool {
	return r.Degraded != NotDegraded
}

// Generator asks the language model for a grounded answer. It makes one
// attempt per call and never retries.
type Generator struct {
	llmProvider llm.LLMProvider
	options     []llm.Option
	timeout     time.Duration
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, log logger.ILogger, timeout time.Duration, options ...llm.Option) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		options:     options,
		timeout:     timeout,
		logger:      log,
	}
}

// Generate returns the trimmed model reply, or a GenerationError.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	reply, err := g.llmProvider.Generate(callCtx, prompt, g.options...)
	if err != nil {
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", &llm.GenerationError{Provider: g.llmProvider.Name(), Err: llm.ErrEmptyReply}
	}
	return reply, nil
}

// Answer wraps Generate and degrades to a static message on failure. The
// message depends on whether retrieval found any sources.
func (g *Generator) Answer(ctx context.Context, prompt string, hasSources bool) Reply {
	start := time.Now()
	text, err := g.Generate(ctx, prompt)
	if err == nil {
		g.logger.Info("GENERATION", "Answer generated", map[string]interface{}{
			"took_ms":   time.Since(start).Milliseconds(),
			"reply_len": len(text),
		})
		return Reply{Text: text}
	}

	g.logger.Error("GENERATION", "LLM generation failed", map[string]interface{}{
		"error":       err.Error(),
		"has_sources": hasSources,
	})

	if hasSources {
		return Reply{Text: DegradedWithSourcesMessage, Degraded: GenerationFailed, Err: err}
	}
	return Reply{Text: UnavailableMessage, Degraded: GenerationFailed, Err: err}
}

// Unavailable is the reply for failures before generation, such as storage errors.
func Unavailable(err error) Reply {
	return Reply{Text: UnavailableMessage, Degraded: AssistantUnavailable, Err: err}
}
