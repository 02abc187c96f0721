package generation

import (
	"context"

	"github.com/quizforge/quizforge-api/internal/domain"
)

// Prompt is a rendered system/user instruction pair ready for dispatch.
// It lives here rather than in the prompt package so providers do not
// depend on template internals.
type Prompt struct {
	System string
	User   string
}

// Provider executes a language-model completion request. Implementations
// exist for the hosted OpenRouter gateway, a local Ollama runtime, and
// the Gemini API. All paths normalize to a plain text return value.
type Provider interface {
	// Name returns the provider's catalog key ("openrouter", "ollama", "gemini").
	Name() string

	// Generate sends the prompt to the given model and returns the raw
	// text of the completion. The prompt type selects the token budget.
	Generate(ctx context.Context, model string, p Prompt, pt domain.PromptType) (string, error)

	// Available reports whether the provider can currently serve
	// requests. A nil error means available.
	Available(ctx context.Context) error
}
