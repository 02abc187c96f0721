package generation

import (
	"strings"
)

// Provider catalog keys. These double as the alias prefixes accepted in
// "prefix:model" requests (with "or" as a short form of "openrouter").
const (
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderGemini     = "gemini"
)

// Selection is a resolved provider+model pair.
type Selection struct {
	Provider string
	Model    string
}

// Catalog holds the operator-configured model lists per provider and
// resolves requested model strings against them.
type Catalog struct {
	openRouterModels []string
	ollamaModels     []string
	geminiModels     []string
}

// NewCatalog creates a catalog from the configured model lists. Empty
// lists are allowed; Select fails only when every list is empty.
func NewCatalog(openRouterModels, ollamaModels, geminiModels []string) *Catalog {
	return &Catalog{
		openRouterModels: openRouterModels,
		ollamaModels:     ollamaModels,
		geminiModels:     geminiModels,
	}
}

// Models returns the configured model list for a provider key.
func (c *Catalog) Models(provider string) []string {
	switch provider {
	case ProviderOpenRouter:
		return c.openRouterModels
	case ProviderOllama:
		return c.ollamaModels
	case ProviderGemini:
		return c.geminiModels
	}
	return nil
}

// Empty reports whether no provider has any model configured.
func (c *Catalog) Empty() bool {
	return len(c.openRouterModels) == 0 &&
		len(c.ollamaModels) == 0 &&
		len(c.geminiModels) == 0
}

// Default returns the catalog-wide default selection: the first hosted
// model, falling back to the first local model, then the first Gemini
// model. Returns ErrNoModelsConfigured when every list is empty.
func (c *Catalog) Default() (Selection, error) {
	switch {
	case len(c.openRouterModels) > 0:
		return Selection{Provider: ProviderOpenRouter, Model: c.openRouterModels[0]}, nil
	case len(c.ollamaModels) > 0:
		return Selection{Provider: ProviderOllama, Model: c.ollamaModels[0]}, nil
	case len(c.geminiModels) > 0:
		return Selection{Provider: ProviderGemini, Model: c.geminiModels[0]}, nil
	}
	return Selection{}, ErrNoModelsConfigured
}

// Select resolves a requested "provider:model" string (or defaults) into
// a concrete provider+model pair. Resolution order:
//
//  1. A "prefix:model" request splits on the first colon only when the
//     prefix is a known provider alias; the remainder may itself contain
//     colons (Ollama tags like "gemma3:12b"). Unknown prefixes fall
//     through to the default resolution.
//  2. providerHint "local" picks the first Ollama model when one is
//     configured.
//  3. Otherwise the catalog default applies.
func (c *Catalog) Select(requested, providerHint string) (Selection, error) {
	if c.Empty() {
		return Selection{}, ErrNoModelsConfigured
	}

	if requested != "" {
		if prefix, rest, ok := strings.Cut(requested, ":"); ok && rest != "" {
			if provider, known := providerForAlias(prefix); known {
				return Selection{Provider: provider, Model: rest}, nil
			}
		}
	}

	if providerHint == "local" && len(c.ollamaModels) > 0 {
		return Selection{Provider: ProviderOllama, Model: c.ollamaModels[0]}, nil
	}

	return c.Default()
}

// providerForAlias maps a request prefix to a provider catalog key.
func providerForAlias(alias string) (string, bool) {
	switch strings.ToLower(alias) {
	case "or", "openrouter":
		return ProviderOpenRouter, true
	case "ollama":
		return ProviderOllama, true
	case "gemini":
		return ProviderGemini, true
	}
	return "", false
}
