package service

import "errors"

// Service-level sentinel errors.
var (
	// ErrNoSnapshot is returned when an undo is requested for a clue
	// that has no live snapshot, either because no rewrite happened or
	// because the snapshot expired.
	ErrNoSnapshot = errors.New("no undo snapshot for clue")

	// ErrProviderNotConfigured is returned when model selection resolves
	// to a provider that was not wired at startup.
	ErrProviderNotConfigured = errors.New("provider not configured")
)
