package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quizforge/quizforge-api/internal/api"
	apimw "github.com/quizforge/quizforge-api/internal/api/middleware"
)

// setupRouter builds the route tree. The rate limiter guards only the
// generation endpoints; health and config stay cheap and unthrottled.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimw.Trace)

	if len(app.config.Server.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: app.config.Server.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	aiHandler := api.NewAIHandler(app.service, app.logger)
	healthHandler := api.NewHealthHandler(app.service, app.config.Server.Port, app.limiter.Limit())
	configHandler := api.NewConfigJSHandler(app.service, app.config.Server.Port)

	r.Get("/ai-config.js", configHandler.ConfigJS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/ai", func(r chi.Router) {
			r.Use(apimw.RateLimit(app.limiter))
			r.Post("/generate", aiHandler.Generate)
			r.Get("/estimate", aiHandler.Estimate)
			r.Post("/undo/{clueID}", aiHandler.Undo)
		})
	})

	return r
}
