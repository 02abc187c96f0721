// Package service contains the generation orchestrator: it resolves a
// model, checks provider availability, builds the prompt, dispatches it,
// parses the response, and records timing stats.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/parser"
	"github.com/quizforge/quizforge-api/internal/prompt"
	"github.com/quizforge/quizforge-api/internal/stats"
)

// GenerationService orchestrates one AI generation end to end.
type GenerationService struct {
	catalog   *generation.Catalog
	providers map[string]generation.Provider
	builder   *prompt.Builder
	tracker   *stats.Tracker
	logger    *slog.Logger
	now       func() time.Time

	avail *availabilityCache
	snaps *snapshotStore
}

// NewGenerationService wires the orchestrator. The providers map is
// keyed by catalog provider name; a provider missing from the map makes
// its models unselectable. A nil logger falls back to the default.
func NewGenerationService(
	catalog *generation.Catalog,
	providers map[string]generation.Provider,
	builder *prompt.Builder,
	tracker *stats.Tracker,
	logger *slog.Logger,
) *GenerationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationService{
		catalog:   catalog,
		providers: providers,
		builder:   builder,
		tracker:   tracker,
		logger:    logger.With(slog.String("component", "generation_service")),
		now:       time.Now,
		avail:     newAvailabilityCache(),
		snaps:     newSnapshotStore(),
	}
}

// Catalog exposes the model catalog for surfaces that render it, like
// the runtime config snippet.
func (s *GenerationService) Catalog() *generation.Catalog {
	return s.catalog
}

// chunkThreshold is the source length above which full-game and
// category-clues generations go through the chunking engine. It matches
// the point where RecommendedChunkSize starts splitting.
const chunkThreshold = 10_000

// Generate runs one generation request end to end and returns the
// parsed result. Errors bubble up unwrapped so callers can map them to
// transport-level responses with errors.Is.
func (s *GenerationService) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	if !req.PromptType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPromptType, req.PromptType)
	}

	sel, err := s.catalog.Select(req.Model, "")
	if err != nil {
		return nil, err
	}

	provider, ok := s.providers[sel.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, sel.Provider)
	}

	if err := s.avail.check(ctx, provider); err != nil {
		return nil, err
	}

	if shouldChunk(req.PromptType, req.Context) {
		return s.generateChunked(ctx, req, sel, provider)
	}

	result, err := s.generateOnce(ctx, req.PromptType, req.Context, req.Difficulty, sel, provider)
	if err != nil {
		return nil, err
	}

	// A successful rewrite makes the previous clue text undoable.
	if req.PromptType == domain.PromptTypeClueRewrite && req.Context.ClueID != "" {
		s.snaps.save(domain.ClueSnapshot{
			ClueID: req.Context.ClueID,
			Clue:   req.Context.Clue,
			Answer: req.Context.Answer,
		})
	}

	return result, nil
}

// generateOnce is the unchunked pipeline: build, dispatch, parse, stamp.
func (s *GenerationService) generateOnce(
	ctx context.Context,
	pt domain.PromptType,
	aictx domain.AIContext,
	d domain.Difficulty,
	sel generation.Selection,
	provider generation.Provider,
) (*domain.GenerationResult, error) {
	p, err := s.builder.Build(pt, aictx, d)
	if err != nil {
		return nil, err
	}

	start := s.now()
	raw, err := provider.Generate(ctx, sel.Model, p, pt)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed",
			slog.String("prompt_type", string(pt)),
			slog.String("provider", sel.Provider),
			slog.String("model", sel.Model),
			slog.String("error", err.Error()))
		return nil, err
	}

	parsed, err := parser.Parse(raw, parser.ValidatorFor(pt))
	if err != nil {
		s.logger.WarnContext(ctx, "response failed to parse",
			slog.String("prompt_type", string(pt)),
			slog.String("model", sel.Model),
			slog.Int("raw_length", len(raw)),
			slog.String("error", err.Error()))
		return nil, err
	}

	// Timings feed estimates only when a usable result came back.
	if err := s.tracker.Record(ctx, sel.Model, elapsed); err != nil {
		s.logger.WarnContext(ctx, "failed to record model stats",
			slog.String("model", sel.Model),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "generation complete",
		slog.String("prompt_type", string(pt)),
		slog.String("provider", sel.Provider),
		slog.String("model", sel.Model),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()))

	return &domain.GenerationResult{
		ID:               uuid.New(),
		Raw:              string(parsed),
		Parsed:           parsed,
		ModelUsed:        sel.Model,
		GeneratedAt:      s.now(),
		GenerationTimeMs: elapsed.Milliseconds(),
	}, nil
}

// Estimate resolves the requested model and returns it with a
// human-readable expected duration.
func (s *GenerationService) Estimate(ctx context.Context, requestedModel string) (string, string, error) {
	sel, err := s.catalog.Select(requestedModel, "")
	if err != nil {
		return "", "", err
	}
	return sel.Model, s.tracker.Estimate(ctx, sel.Model), nil
}

// Undo returns and consumes the pre-rewrite snapshot for a clue.
func (s *GenerationService) Undo(clueID string) (*domain.ClueSnapshot, error) {
	snap, ok := s.snaps.pop(clueID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, clueID)
	}
	return &snap, nil
}
