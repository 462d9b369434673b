package huggingface

import (
	"context"
	"errors"
	"time"

	"motherlanka-be/pkg/llm"
	"motherlanka-be/pkg/llm/openai"
)

const (
	providerName   = "huggingface"
	DefaultBaseURL = "https://router.huggingface.co/v1"
)

var errMissingKey = errors.New("HF_API_KEY is not configured")

// HuggingFaceProvider calls the Hugging Face router, which speaks the
// OpenAI chat completions protocol.
type HuggingFaceProvider struct {
	*openai.OpenAIProvider
	apiKey string
}

var _ llm.LLMProvider = (*HuggingFaceProvider)(nil)

func NewHuggingFaceProvider(apiKey, baseURL, model string, timeout time.Duration) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HuggingFaceProvider{
		OpenAIProvider: openai.NewCompatibleProvider(providerName, apiKey, baseURL, model, timeout),
		apiKey:         apiKey,
	}
}

func (p *HuggingFaceProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", &llm.GenerationError{Provider: providerName, Err: errMissingKey}
	}
	return p.OpenAIProvider.Chat(ctx, history, options...)
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
