// Package gemini implements a generation provider against Google's
// Gemini API using the genai SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/quizforge/quizforge-api/internal/config"
	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/prompt"
)

// Generator is a generation.Provider backed by the Gemini API.
type Generator struct {
	client *genai.Client
	logger *slog.Logger
}

// New creates a Gemini generator. It fails when no API key is
// configured; callers should only construct it for deployments that
// opt into Gemini models.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", generation.ErrMissingAPIKey)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Generator{
		client: client,
		logger: logger.With(slog.String("component", "gemini_generator")),
	}, nil
}

var _ generation.Provider = (*Generator)(nil)

// Name implements generation.Provider.Name.
func (g *Generator) Name() string {
	return generation.ProviderGemini
}

// Available implements generation.Provider.Available. Construction
// already required a key, so a built generator is considered available.
func (g *Generator) Available(_ context.Context) error {
	return nil
}

// Generate implements generation.Provider.Generate.
func (g *Generator) Generate(
	ctx context.Context,
	model string,
	p generation.Prompt,
	pt domain.PromptType,
) (string, error) {
	g.logger.DebugContext(ctx, "dispatching completion",
		slog.String("model", model),
		slog.String("prompt_type", string(pt)))

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(p.User),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
			MaxOutputTokens:   int32(prompt.TokenBudget(pt)),
		})
	if err != nil {
		return "", fmt.Errorf("%w: gemini request failed: %v", generation.ErrProvider, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", generation.ErrEmptyCompletion
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: gemini blocked the prompt on safety grounds", generation.ErrProvider)
	}

	text := resp.Text()
	if text == "" {
		return "", generation.ErrEmptyCompletion
	}
	return text, nil
}
