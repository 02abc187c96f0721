package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge-api/internal/chunker"
	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
)

// shouldChunk reports whether a request's source material is long
// enough to go through the chunking engine. Only the two list-producing
// types merge cleanly across chunks.
func shouldChunk(pt domain.PromptType, aictx domain.AIContext) bool {
	if pt != domain.PromptTypeFullGame && pt != domain.PromptTypeCategoryClues {
		return false
	}
	return len(aictx.SourceMaterial) > chunkThreshold
}

// generateChunked splits long source material, runs one generation per
// chunk with a proportional item goal, and merges the per-chunk arrays
// into a single result. The merged total is approximate; per-chunk goal
// rounding can drift it slightly from the requested count.
func (s *GenerationService) generateChunked(
	ctx context.Context,
	req domain.GenerationRequest,
	sel generation.Selection,
	provider generation.Provider,
) (*domain.GenerationResult, error) {
	src := req.Context.SourceMaterial
	res := chunker.Split(src, chunker.RecommendedChunkSize(len(src)))
	if res.TotalChunks <= 1 {
		return s.generateOnce(ctx, req.PromptType, req.Context, req.Difficulty, sel, provider)
	}

	desired := req.Context.Count
	if desired <= 0 {
		desired = defaultItemTotal(req.PromptType)
	}
	goals := chunker.AllocateGoals(res, desired)

	s.logger.InfoContext(ctx, "chunking source material",
		slog.String("prompt_type", string(req.PromptType)),
		slog.Int("chunks", res.TotalChunks),
		slog.Int("source_length", res.OriginalLength),
		slog.Int("desired_total", desired))

	key := mergeKey(req.PromptType)
	var merged []json.RawMessage
	var totalMs int64

	for i, chunk := range res.Chunks {
		cctx := req.Context
		cctx.SourceMaterial = chunk.Text
		cctx.ChunkIndex = i + 1
		cctx.ChunkTotal = res.TotalChunks
		cctx.ChunkGoal = goals[i]

		result, err := s.generateOnce(ctx, req.PromptType, cctx, req.Difficulty, sel, provider)
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %d: %w", i+1, res.TotalChunks, err)
		}
		totalMs += result.GenerationTimeMs

		items, err := extractItems(result.Parsed, key)
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %d: %w", i+1, res.TotalChunks, err)
		}
		merged = append(merged, items...)
	}

	parsed, err := json.Marshal(map[string][]json.RawMessage{key: merged})
	if err != nil {
		return nil, fmt.Errorf("failed to merge chunk results: %w", err)
	}

	return &domain.GenerationResult{
		ID:               uuid.New(),
		Raw:              string(parsed),
		Parsed:           parsed,
		ModelUsed:        sel.Model,
		GeneratedAt:      s.now(),
		GenerationTimeMs: totalMs,
	}, nil
}

// mergeKey is the top-level array key the chunked types share.
func mergeKey(pt domain.PromptType) string {
	if pt == domain.PromptTypeFullGame {
		return "categories"
	}
	return "clues"
}

// defaultItemTotal mirrors the per-template default counts.
func defaultItemTotal(pt domain.PromptType) int {
	if pt == domain.PromptTypeFullGame {
		return 6
	}
	return 5
}

// extractItems pulls the top-level array out of one chunk's result.
func extractItems(parsed json.RawMessage, key string) ([]json.RawMessage, error) {
	var envelope map[string][]json.RawMessage
	if err := json.Unmarshal(parsed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to extract %q array: %w", key, err)
	}
	return envelope[key], nil
}
