package api

import (
	"github.com/quizforge/quizforge-api/internal/domain"
)

// GenerateRequest is the body of POST /api/ai/generate.
type GenerateRequest struct {
	PromptType string           `json:"promptType" validate:"required"`
	Context    domain.AIContext `json:"context"`
	Difficulty string           `json:"difficulty" validate:"omitempty,oneof=easy normal hard"`
	Model      string           `json:"model"`
}

// GenerateResponse is the success body of POST /api/ai/generate. Result
// is the validated payload text; clients parse it themselves.
type GenerateResponse struct {
	Result           string `json:"result"`
	Model            string `json:"model"`
	GenerationTimeMs int64  `json:"generationTimeMs"`
}

// InvalidPromptTypeResponse is the 400 body for an unknown promptType.
// It lists the allowed set so clients can self-correct.
type InvalidPromptTypeResponse struct {
	Error      string              `json:"error"`
	ValidTypes []domain.PromptType `json:"validTypes"`
}

// EstimateResponse is the body of GET /api/ai/estimate.
type EstimateResponse struct {
	Model    string `json:"model"`
	Estimate string `json:"estimate"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status             string              `json:"status"`
	Models             map[string][]string `json:"models"`
	DefaultModel       string              `json:"default_model"`
	RateLimitPerMinute int                 `json:"rate_limit_per_minute"`
	Port               int                 `json:"port"`
}
