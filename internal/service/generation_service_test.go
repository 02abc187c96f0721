package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/parser"
	"github.com/quizforge/quizforge-api/internal/prompt"
	"github.com/quizforge/quizforge-api/internal/stats"
	"github.com/quizforge/quizforge-api/internal/store"
)

// fakeProvider scripts responses and records what it was asked.
type fakeProvider struct {
	mu         sync.Mutex
	name       string
	responses  []string
	response   string
	err        error
	availErr   error
	availCalls int
	prompts    []generation.Prompt
	models     []string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(
	_ context.Context,
	model string,
	p generation.Prompt,
	_ domain.PromptType,
) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, p)
	f.models = append(f.models, model)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) > 0 {
		resp := f.responses[0]
		f.responses = f.responses[1:]
		return resp, nil
	}
	return f.response, nil
}

func (f *fakeProvider) Available(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.availCalls++
	return f.availErr
}

func newTestService(p *fakeProvider) *GenerationService {
	catalog := generation.NewCatalog([]string{"openai/gpt-4o-mini"}, []string{"gemma3:12b"}, nil)
	tracker := stats.NewTracker(store.NewMemoryStatsStore(), nil)
	providers := map[string]generation.Provider{
		generation.ProviderOpenRouter: p,
		generation.ProviderOllama:     p,
	}
	return NewGenerationService(catalog, providers, prompt.NewBuilder(), tracker, nil)
}

func TestGenerateSuccess(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: "```json\n{\"titles\": [\"Moons of Jupiter\", \"Rocket Men\"]}\n```",
	}
	svc := newTestService(p)

	result, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "space", Count: 2},
		Difficulty: domain.DifficultyNormal,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "openai/gpt-4o-mini", result.ModelUsed)
	assert.JSONEq(t, `{"titles": ["Moons of Jupiter", "Rocket Men"]}`, string(result.Parsed))
	assert.JSONEq(t, result.Raw, string(result.Parsed))

	// A completed generation feeds estimates.
	_, estimate, err := svc.Estimate(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, stats.NoHistory, estimate)
}

func TestGenerateUnknownPromptType(t *testing.T) {
	svc := newTestService(&fakeProvider{name: generation.ProviderOpenRouter})

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptType("limerick"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPromptType)
}

func TestGenerateNoModelsConfigured(t *testing.T) {
	svc := NewGenerationService(
		generation.NewCatalog(nil, nil, nil),
		map[string]generation.Provider{},
		prompt.NewBuilder(),
		stats.NewTracker(store.NewMemoryStatsStore(), nil),
		nil,
	)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	})
	assert.ErrorIs(t, err, generation.ErrNoModelsConfigured)
}

func TestGenerateProviderNotConfigured(t *testing.T) {
	catalog := generation.NewCatalog([]string{"m"}, nil, nil)
	svc := NewGenerationService(catalog, map[string]generation.Provider{},
		prompt.NewBuilder(), stats.NewTracker(store.NewMemoryStatsStore(), nil), nil)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	})
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestGenerateAvailabilityIsCached(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: `{"titles": ["A"]}`,
	}
	svc := newTestService(p)

	req := domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	}
	for i := 0; i < 3; i++ {
		_, err := svc.Generate(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, p.availCalls, "availability probes within the TTL must be cached")
}

func TestGenerateUnavailableProvider(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		availErr: fmt.Errorf("%w: down", generation.ErrProviderUnavailable),
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	})
	assert.ErrorIs(t, err, generation.ErrProviderUnavailable)
	assert.Empty(t, p.prompts, "no generation is dispatched to an unavailable provider")
}

func TestGenerateParseFailureSkipsStats(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: "I would rather write a poem.",
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	})
	assert.ErrorIs(t, err, parser.ErrParse)

	_, estimate, eerr := svc.Estimate(context.Background(), "")
	require.NoError(t, eerr)
	assert.Equal(t, stats.NoHistory, estimate, "failed generations must not feed estimates")
}

func TestGenerateSchemaFailure(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: `{"name": "Solo"}`,
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTeamNameRandom,
	})
	assert.ErrorIs(t, err, parser.ErrSchema)
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	p := &fakeProvider{
		name: generation.ProviderOpenRouter,
		err:  fmt.Errorf("%w: status 500", generation.ErrProvider),
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeTitles,
		Context:    domain.AIContext{Theme: "x"},
	})
	assert.ErrorIs(t, err, generation.ErrProvider)
}

func TestRewriteSnapshotAndUndo(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: `{"clue": "better clue", "answer": "same answer"}`,
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeClueRewrite,
		Context: domain.AIContext{
			ClueID: "clue-42",
			Clue:   "original clue",
			Answer: "same answer",
		},
	})
	require.NoError(t, err)

	snap, err := svc.Undo("clue-42")
	require.NoError(t, err)
	assert.Equal(t, "original clue", snap.Clue)
	assert.Equal(t, "same answer", snap.Answer)

	// Undo is one-shot.
	_, err = svc.Undo("clue-42")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestUndoUnknownClue(t *testing.T) {
	svc := newTestService(&fakeProvider{name: generation.ProviderOpenRouter})

	_, err := svc.Undo("never-rewritten")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFailedRewriteLeavesNoSnapshot(t *testing.T) {
	p := &fakeProvider{
		name: generation.ProviderOpenRouter,
		err:  errors.New("boom"),
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeClueRewrite,
		Context:    domain.AIContext{ClueID: "clue-7", Clue: "c"},
	})
	require.Error(t, err)

	_, err = svc.Undo("clue-7")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestGenerateChunkedMergesCategories(t *testing.T) {
	para := strings.Repeat("w", 500)
	source := strings.Repeat(para+"\n\n", 24) // ~12k chars, paragraph aligned

	p := &fakeProvider{
		name: generation.ProviderOpenRouter,
		responses: []string{
			`{"categories": [{"title": "From Chunk One", "clues": [{"clue": "c", "answer": "a", "value": 200}]}]}`,
			`{"categories": [{"title": "From Chunk Two", "clues": [{"clue": "c", "answer": "a", "value": 200}]}]}`,
		},
	}
	svc := newTestService(p)

	result, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeFullGame,
		Context:    domain.AIContext{SourceMaterial: source, Count: 6},
	})
	require.NoError(t, err)

	require.Len(t, p.prompts, 2, "a ~12k source splits into two chunks")
	assert.Contains(t, p.prompts[0].User, "chunk 1 of 2")
	assert.Contains(t, p.prompts[1].User, "chunk 2 of 2")

	assert.Contains(t, string(result.Parsed), "From Chunk One")
	assert.Contains(t, string(result.Parsed), "From Chunk Two")
}

func TestGenerateChunkedFailsOnChunkError(t *testing.T) {
	para := strings.Repeat("w", 500)
	source := strings.Repeat(para+"\n\n", 24)

	p := &fakeProvider{
		name: generation.ProviderOpenRouter,
		responses: []string{
			`{"clues": [{"clue": "c", "answer": "a", "value": 200}]}`,
			`not json at all, and no structure to repair (`,
		},
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeCategoryClues,
		Context:    domain.AIContext{CategoryTitle: "History", SourceMaterial: source},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 2 of 2")
}

func TestShortSourceIsNotChunked(t *testing.T) {
	p := &fakeProvider{
		name:     generation.ProviderOpenRouter,
		response: `{"categories": [{"title": "T", "clues": [{"clue": "c", "answer": "a", "value": 200}]}]}`,
	}
	svc := newTestService(p)

	_, err := svc.Generate(context.Background(), domain.GenerationRequest{
		PromptType: domain.PromptTypeFullGame,
		Context:    domain.AIContext{SourceMaterial: strings.Repeat("x", 2000)},
	})
	require.NoError(t, err)
	require.Len(t, p.prompts, 1)
	assert.NotContains(t, p.prompts[0].User, "chunk 1 of")
}

func TestEstimateResolvesModelAliases(t *testing.T) {
	svc := newTestService(&fakeProvider{name: generation.ProviderOpenRouter})

	model, estimate, err := svc.Estimate(context.Background(), "ollama:gemma3:12b")
	require.NoError(t, err)
	assert.Equal(t, "gemma3:12b", model)
	assert.Equal(t, stats.NoHistory, estimate)
}
