package api

import (
	"errors"
	"net/http"

	"github.com/quizforge/quizforge-api/internal/domain"
	"github.com/quizforge/quizforge-api/internal/generation"
	"github.com/quizforge/quizforge-api/internal/parser"
	"github.com/quizforge/quizforge-api/internal/service"
)

// MapErrorToStatusCode maps pipeline errors to HTTP status codes.
// Provider and parse failures are all 500s: the client's request was
// fine, the generation was not.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownPromptType),
		errors.Is(err, domain.ErrMissingContext),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrNoSnapshot):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the stable summary for an error. The
// underlying detail travels separately in the response's message field.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownPromptType):
		return "Unknown prompt type"
	case errors.Is(err, domain.ErrMissingContext):
		return "Missing required context field"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	case errors.Is(err, service.ErrNoSnapshot):
		return "No undo snapshot for this clue"
	case errors.Is(err, generation.ErrNoModelsConfigured):
		return "No AI models are configured"
	case errors.Is(err, generation.ErrProviderUnavailable):
		return "AI provider is unavailable"
	case errors.Is(err, generation.ErrMissingAPIKey):
		return "AI provider is missing an API key"
	case errors.Is(err, service.ErrProviderNotConfigured):
		return "AI provider is not configured"
	case errors.Is(err, parser.ErrParse):
		return "Model response was not parseable"
	case errors.Is(err, parser.ErrSchema):
		return "Model response did not match the expected shape"
	case errors.Is(err, generation.ErrEmptyCompletion):
		return "Model returned no content"
	case errors.Is(err, generation.ErrProvider):
		return "AI provider request failed"
	default:
		return "Generation failed"
	}
}
