package api

import (
	"net/http"

	"github.com/quizforge/quizforge-api/internal/api/shared"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/service"
)

// HealthHandler serves GET /api/health with the model catalog and the
// effective runtime settings a client needs to talk to us.
type HealthHandler struct {
	service            *service.GenerationService
	port               int
	rateLimitPerMinute int
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(svc *service.GenerationService, port, rateLimitPerMinute int) *HealthHandler {
	return &HealthHandler{
		service:            svc,
		port:               port,
		rateLimitPerMinute: rateLimitPerMinute,
	}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()

	defaultModel := ""
	if sel, err := catalog.Default(); err == nil {
		defaultModel = sel.Model
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Models: map[string][]string{
			generation.ProviderOpenRouter: catalog.Models(generation.ProviderOpenRouter),
			generation.ProviderOllama:     catalog.Models(generation.ProviderOllama),
			generation.ProviderGemini:     catalog.Models(generation.ProviderGemini),
		},
		DefaultModel:       defaultModel,
		RateLimitPerMinute: h.rateLimitPerMinute,
		Port:               h.port,
	})
}
