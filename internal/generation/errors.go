package generation

import "errors"

// Common errors returned by providers and the model selector.
var (
	// ErrNoModelsConfigured is returned when no provider has any model
	// configured. This is a fatal operator misconfiguration, not a
	// per-request failure.
	ErrNoModelsConfigured = errors.New("no models configured for any provider")

	// ErrProvider is returned when a provider responds with a non-2xx
	// status. The wrapped message carries the provider's own status and body.
	ErrProvider = errors.New("provider request failed")

	// ErrProviderUnavailable is returned when the availability probe for
	// the selected provider fails; no dispatch is attempted.
	ErrProviderUnavailable = errors.New("provider not available")

	// ErrEmptyCompletion is returned when an otherwise-successful provider
	// response contains no extractable content.
	ErrEmptyCompletion = errors.New("no content in response")

	// ErrMissingAPIKey is returned at dispatch time when the selected
	// provider requires a credential that is not configured.
	ErrMissingAPIKey = errors.New("provider API key not configured")
)
