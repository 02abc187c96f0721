package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPrefixedModel(t *testing.T) {
	catalog := NewCatalog(
		[]string{"openai/gpt-4o-mini"},
		[]string{"llama3:8b"},
		nil,
	)

	tests := []struct {
		name         string
		requested    string
		wantProvider string
		wantModel    string
	}{
		{
			name:         "openrouter short alias",
			requested:    "or:anthropic/claude-3-haiku",
			wantProvider: ProviderOpenRouter,
			wantModel:    "anthropic/claude-3-haiku",
		},
		{
			name:         "openrouter long alias",
			requested:    "openrouter:openai/gpt-4o",
			wantProvider: ProviderOpenRouter,
			wantModel:    "openai/gpt-4o",
		},
		{
			name:         "ollama model with tag keeps inner colon",
			requested:    "ollama:gemma3:12b",
			wantProvider: ProviderOllama,
			wantModel:    "gemma3:12b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := catalog.Select(tc.requested, "")
			require.NoError(t, err)
			assert.Equal(t, tc.wantProvider, sel.Provider)
			assert.Equal(t, tc.wantModel, sel.Model)
		})
	}
}

func TestSelectUnknownPrefixFallsThrough(t *testing.T) {
	catalog := NewCatalog([]string{"openai/gpt-4o-mini"}, nil, nil)

	// "gpt-4:turbo" is not a known alias, so the whole string is ignored
	// and the default resolution applies.
	sel, err := catalog.Select("gpt-4:turbo", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, sel.Provider)
	assert.Equal(t, "openai/gpt-4o-mini", sel.Model)
}

func TestSelectLocalHint(t *testing.T) {
	catalog := NewCatalog([]string{"openai/gpt-4o-mini"}, []string{"llama3:8b"}, nil)

	sel, err := catalog.Select("", "local")
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, sel.Provider)
	assert.Equal(t, "llama3:8b", sel.Model)
}

func TestSelectLocalHintWithoutLocalModels(t *testing.T) {
	catalog := NewCatalog([]string{"openai/gpt-4o-mini"}, nil, nil)

	sel, err := catalog.Select("", "local")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, sel.Provider)
}

func TestSelectDefaultOrder(t *testing.T) {
	// Hosted first.
	sel, err := NewCatalog([]string{"a"}, []string{"b"}, []string{"c"}).Select("", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, sel.Provider)

	// Then local.
	sel, err = NewCatalog(nil, []string{"b"}, []string{"c"}).Select("", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, sel.Provider)

	// Then Gemini.
	sel, err = NewCatalog(nil, nil, []string{"c"}).Select("", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, sel.Provider)
}

func TestSelectNoModelsConfigured(t *testing.T) {
	catalog := NewCatalog(nil, nil, nil)

	_, err := catalog.Select("", "")
	assert.ErrorIs(t, err, ErrNoModelsConfigured)

	_, err = catalog.Select("ollama:llama3", "")
	assert.ErrorIs(t, err, ErrNoModelsConfigured)
}
