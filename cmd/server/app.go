package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/quizforge/quizforge-api/internal/config"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/platform/gemini"
	"github.com/quizforge/quizforge-api/internal/platform/ollama"
	"github.com/quizforge/quizforge-api/internal/platform/openrouter"
	"github.com/quizforge/quizforge-api/internal/platform/postgres"
	"github.com/quizforge/quizforge-api/internal/prompt"
	"github.com/quizforge/quizforge-api/internal/ratelimit"
	"github.com/quizforge/quizforge-api/internal/service"
	"github.com/quizforge/quizforge-api/internal/stats"
	"github.com/quizforge/quizforge-api/internal/store"
)

// application holds the shared dependencies so setup and shutdown stay
// in one place.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	tracker *stats.Tracker
	service *service.GenerationService
	limiter *ratelimit.Limiter
}

// newApplication wires the generation pipeline. A nil db keeps model
// stats in memory; everything else works the same.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var statsStore store.StatsStore
	if db != nil {
		statsStore = postgres.NewStatsStore(db, logger)
	} else {
		statsStore = store.NewMemoryStatsStore()
	}

	app.tracker = stats.NewTracker(statsStore, logger)
	if db != nil {
		if err := app.tracker.Warm(ctx); err != nil {
			logger.Warn("failed to warm stats cache, estimates start cold",
				slog.String("error", err.Error()))
		}
	}

	catalog := generation.NewCatalog(
		cfg.LLM.OpenRouterModels,
		cfg.LLM.OllamaModels,
		cfg.LLM.GeminiModels,
	)
	if catalog.Empty() {
		logger.Warn("no models configured for any provider; generation requests will fail")
	}

	providers := map[string]generation.Provider{
		generation.ProviderOpenRouter: openrouter.New(cfg.LLM, logger),
		generation.ProviderOllama:     ollama.New(cfg.LLM, logger),
	}

	// Gemini is opt-in: only wired when a key is present, so the rest of
	// the pipeline never depends on it.
	if cfg.LLM.GeminiAPIKey != "" {
		g, err := gemini.New(ctx, cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini provider: %w", err)
		}
		providers[generation.ProviderGemini] = g
		logger.Info("gemini provider enabled")
	}

	app.service = service.NewGenerationService(
		catalog, providers, prompt.NewBuilder(), app.tracker, logger)
	app.limiter = ratelimit.New(cfg.RateLimit.RequestsPerMinute)

	logger.Info("application initialized",
		slog.Int("openrouter_models", len(cfg.LLM.OpenRouterModels)),
		slog.Int("ollama_models", len(cfg.LLM.OllamaModels)),
		slog.Int("gemini_models", len(cfg.LLM.GeminiModels)))
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection",
				slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
