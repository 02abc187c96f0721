package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge-api/internal/service"
)

// ConfigJSHandler serves GET /ai-config.js, a small script that tells a
// browser client where this API lives. Serving it as JavaScript lets a
// static front end pick up the runtime config with one script tag.
type ConfigJSHandler struct {
	service *service.GenerationService
	port    int
}

// NewConfigJSHandler creates the runtime config script handler.
func NewConfigJSHandler(svc *service.GenerationService, port int) *ConfigJSHandler {
	return &ConfigJSHandler{service: svc, port: port}
}

// ConfigJS handles GET /ai-config.js.
func (h *ConfigJSHandler) ConfigJS(w http.ResponseWriter, r *http.Request) {
	defaultModel := ""
	if sel, err := h.service.Catalog().Default(); err == nil {
		defaultModel = sel.Model
	}

	cfg := map[string]any{
		"port":         h.port,
		"apiBase":      fmt.Sprintf("http://localhost:%d/api", h.port),
		"defaultModel": defaultModel,
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to encode runtime config",
			slog.String("error", err.Error()))
		http.Error(w, "failed to encode runtime config", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprintf(w, "window.QUIZFORGE_AI_CONFIG = %s;\n", payload)
}
