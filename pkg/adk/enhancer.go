package adk

import (
	"context"

	"github.com/user/bountyx-ai/pkg/engine"
)

// Enhancer is the injected capability that adds an optional AI summary
// to a finished analysis. The core pipeline never depends on it.
type Enhancer interface {
	Enhance(ctx context.Context, a *engine.Analysis) (string, error)
	Model() string
}

// ProviderEnhancer enhances an analysis through an AI provider.
type ProviderEnhancer struct {
	Provider Provider
}

func (e *ProviderEnhancer) Model() string {
	return e.Provider.Name()
}

// Enhance builds the prompt from the analysis and asks the provider for
// a summary. Best-effort: the caller decides what to do on error, the
// analysis is never modified here.
func (e *ProviderEnhancer) Enhance(ctx context.Context, a *engine.Analysis) (string, error) {
	prompt := BuildPrompt(a)
	Debugf("Enhancement prompt (%d bytes)", len(prompt))
	return e.Provider.Summarize(ctx, prompt)
}
