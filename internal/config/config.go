package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"        validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins is the allow-list for browser clients. Empty means
	// same-origin only.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains the optional stats database settings. When URL
// is empty the server keeps model statistics in memory only.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig contains provider catalogs and credentials. A missing
// OpenRouter API key is only an error if an OpenRouter model is actually
// dispatched, so no "required" tag here; Load only demands that at least
// one provider has a model configured.
type LLMConfig struct {
	OpenRouterAPIKey string   `mapstructure:"openrouter_api_key"`
	OpenRouterURL    string   `mapstructure:"openrouter_url"`
	OpenRouterModels []string `mapstructure:"openrouter_models"`

	OllamaURL    string   `mapstructure:"ollama_url"`
	OllamaModels []string `mapstructure:"ollama_models"`

	GeminiAPIKey string   `mapstructure:"gemini_api_key"`
	GeminiModels []string `mapstructure:"gemini_models"`
}

// RateLimitConfig controls per-source request admission.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"required,gt=0"`
}
