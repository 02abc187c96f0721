// Package openrouter implements the hosted generation provider against
// the OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/quizforge/quizforge-api/internal/config"
	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/prompt"
)

// maxErrorBody caps how much of an upstream error body gets copied
// into our own error messages.
const maxErrorBody = 2048

// defaultTimeout bounds a single completion call. Large full-game
// generations on slow models can legitimately take minutes.
const defaultTimeout = 5 * time.Minute

// Client is a generation.Provider backed by OpenRouter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// New creates an OpenRouter client from LLM configuration. A nil
// logger falls back to the default.
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.OpenRouterURL,
		apiKey:  cfg.OpenRouterAPIKey,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger.With(slog.String("component", "openrouter_client")),
	}
}

var _ generation.Provider = (*Client)(nil)

// Name implements generation.Provider.Name.
func (c *Client) Name() string {
	return generation.ProviderOpenRouter
}

// Available implements generation.Provider.Available. The hosted
// provider is considered available when an API key is configured; the
// key is not verified until a generation is dispatched.
func (c *Client) Available(_ context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: OPENROUTER_API_KEY is not set", generation.ErrMissingAPIKey)
	}
	return nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements generation.Provider.Generate.
func (c *Client) Generate(
	ctx context.Context,
	model string,
	p generation.Prompt,
	pt domain.PromptType,
) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: OPENROUTER_API_KEY is not set", generation.ErrMissingAPIKey)
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		MaxTokens:   prompt.TokenBudget(pt),
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "dispatching completion",
		slog.String("model", model),
		slog.String("prompt_type", string(pt)))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: openrouter request failed: %v", generation.ErrProvider, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read openrouter response: %v", generation.ErrProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := raw
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return "", fmt.Errorf("%w: openrouter returned status %d: %s",
			generation.ErrProvider, resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: openrouter returned malformed JSON: %v", generation.ErrProvider, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: openrouter error: %s", generation.ErrProvider, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", generation.ErrEmptyCompletion
	}

	return parsed.Choices[0].Message.Content, nil
}
