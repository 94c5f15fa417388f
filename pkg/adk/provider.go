package adk

import (
	"context"
	"fmt"
)

// Provider defines the interface for the AI models that can enhance an
// analysis. Summarize is a single best-effort completion call; callers
// treat failures as non-fatal.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

func NewProvider(ctx context.Context, providerName, apiKey, modelName string) (Provider, error) {
	switch providerName {
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIProvider(apiKey, modelName), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}
