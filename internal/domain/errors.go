package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownPromptType is returned when a prompt type is not in the
	// closed set of supported generation intents.
	ErrUnknownPromptType = errors.New("unknown prompt type")

	// ErrMissingContext is returned when a required context field for the
	// requested prompt type is absent.
	ErrMissingContext = errors.New("missing required context field")
)

// ValidationError describes a validation failure on a specific field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
