package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// QUIZFORGE_ prefix with underscores for nesting, e.g.
// QUIZFORGE_SERVER_PORT, QUIZFORGE_LLM_OPENROUTER_API_KEY.
// Environment variables take precedence over file values.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("QUIZFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env-only deployments are the norm.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Model catalogs arrive as comma-separated strings from env vars.
	cfg.LLM.OpenRouterModels = splitModels(v.GetString("llm.openrouter_models"))
	cfg.LLM.OllamaModels = splitModels(v.GetString("llm.ollama_models"))
	cfg.LLM.GeminiModels = splitModels(v.GetString("llm.gemini_models"))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults establishes sane defaults so a bare environment still
// yields a runnable (if model-less) server.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3003)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("database.url", "")
	v.SetDefault("llm.openrouter_api_key", "")
	v.SetDefault("llm.openrouter_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.openrouter_models", "")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.ollama_models", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.gemini_models", "")
	v.SetDefault("rate_limit.requests_per_minute", 60)
}

// splitModels parses a comma-separated model list, trimming whitespace
// and dropping empty entries.
func splitModels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			models = append(models, name)
		}
	}
	return models
}
