// Package api exposes the generation pipeline over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/quizforge/quizforge-api/internal/api/shared"
	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/service"
)

// AIHandler serves the /api/ai endpoints.
type AIHandler struct {
	service   *service.GenerationService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAIHandler creates the AI endpoint handler. A nil logger falls back
// to the default.
func NewAIHandler(svc *service.GenerationService, logger *slog.Logger) *AIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIHandler{
		service:   svc,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "ai_handler")),
	}
}

// Generate handles POST /api/ai/generate.
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		return
	}

	pt := domain.PromptType(req.PromptType)
	if !pt.Valid() {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, InvalidPromptTypeResponse{
			Error:      "unknown promptType: " + req.PromptType,
			ValidTypes: domain.AllPromptTypes,
		})
		return
	}

	result, err := h.service.Generate(r.Context(), domain.GenerationRequest{
		PromptType: pt,
		Context:    req.Context,
		Difficulty: domain.Difficulty(req.Difficulty),
		Model:      req.Model,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Result:           result.Raw,
		Model:            result.ModelUsed,
		GenerationTimeMs: result.GenerationTimeMs,
	})
}

// Estimate handles GET /api/ai/estimate.
func (h *AIHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	model, estimate, err := h.service.Estimate(r.Context(), r.URL.Query().Get("model"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EstimateResponse{
		Model:    model,
		Estimate: estimate,
	})
}

// Undo handles POST /api/ai/undo/{clueID}.
func (h *AIHandler) Undo(w http.ResponseWriter, r *http.Request) {
	clueID := chi.URLParam(r, "clueID")
	if clueID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "clueID is required")
		return
	}

	snap, err := h.service.Undo(clueID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, snap)
}
