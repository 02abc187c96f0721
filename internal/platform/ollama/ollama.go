// Package ollama implements the local generation provider against a
// locally running Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"syscall"
	"time"

	"github.com/quizforge/quizforge-api/internal/config"
	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/prompt"
)

const maxErrorBody = 2048

// Local models stream token by token; a whole board can take a while.
const defaultTimeout = 10 * time.Minute

// probeTimeout bounds the availability check so a down runtime fails
// fast instead of hanging the request.
const probeTimeout = 2 * time.Second

// Client is a generation.Provider backed by a local Ollama runtime.
type Client struct {
	baseURL string
	http    *http.Client
	probe   *http.Client
	logger  *slog.Logger
}

// New creates an Ollama client from LLM configuration. A nil logger
// falls back to the default.
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.OllamaURL,
		http:    &http.Client{Timeout: defaultTimeout},
		probe:   &http.Client{Timeout: probeTimeout},
		logger:  logger.With(slog.String("component", "ollama_client")),
	}
}

var _ generation.Provider = (*Client)(nil)

// Name implements generation.Provider.Name.
func (c *Client) Name() string {
	return generation.ProviderOllama
}

// Available implements generation.Provider.Available by probing the
// runtime's tag listing endpoint.
func (c *Client) Available(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to build availability probe: %w", err)
	}

	resp, err := c.probe.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ollama at %s returned status %d",
			generation.ErrProviderUnavailable, c.baseURL, resp.StatusCode)
	}
	return nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	NumPredict  int     `json:"num_predict"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error"`
}

// Generate implements generation.Provider.Generate.
func (c *Client) Generate(
	ctx context.Context,
	model string,
	p generation.Prompt,
	pt domain.PromptType,
) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Stream: false,
		Options: chatOptions{
			NumPredict:  prompt.TokenBudget(pt),
			Temperature: 0.7,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "dispatching completion",
		slog.String("model", model),
		slog.String("prompt_type", string(pt)))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", c.unreachable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read ollama response: %v", generation.ErrProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := raw
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return "", fmt.Errorf("%w: ollama returned status %d: %s",
			generation.ErrProvider, resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: ollama returned malformed JSON: %v", generation.ErrProvider, err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("%w: ollama error: %s", generation.ErrProvider, parsed.Error)
	}
	if parsed.Message.Content == "" {
		return "", generation.ErrEmptyCompletion
	}

	return parsed.Message.Content, nil
}

// unreachable rewrites transport failures into an actionable message.
// A refused connection almost always means the runtime is not running.
func (c *Client) unreachable(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: ollama is not reachable at %s; start it with `ollama serve`",
			generation.ErrProviderUnavailable, c.baseURL)
	}
	return fmt.Errorf("%w: failed to reach ollama at %s: %v",
		generation.ErrProviderUnavailable, c.baseURL, err)
}
