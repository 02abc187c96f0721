package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationRequest is the wire shape accepted by the generate endpoint.
type GenerationRequest struct {
	PromptType PromptType `json:"promptType" validate:"required"`
	Context    AIContext  `json:"context"`
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Model optionally pins the request to a "provider:model" pair.
	// Empty means the configured default resolution order applies.
	Model string `json:"model,omitempty"`
}

// GenerationResult is a validated provider response plus metadata stamped
// by the orchestrator. Raw is the exact text payload after fence
// stripping; Parsed is the same payload as JSON, guaranteed to have
// passed the prompt type's validator.
type GenerationResult struct {
	ID               uuid.UUID       `json:"id"`
	Raw              string          `json:"raw"`
	Parsed           json.RawMessage `json:"parsed"`
	ModelUsed        string          `json:"modelUsed"`
	GeneratedAt      time.Time       `json:"generatedAt"`
	GenerationTimeMs int64           `json:"generationTimeMs"`
}

// ModelStats aggregates generation latency per model. Persisted through
// the stats store so time estimates survive restarts.
type ModelStats struct {
	Model      string    `json:"model"`
	Count      int64     `json:"count"`
	TotalMs    int64     `json:"totalMs"`
	AverageMs  int64     `json:"averageMs"`
	FastestMs  int64     `json:"fastestMs"`
	SlowestMs  int64     `json:"slowestMs"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}
