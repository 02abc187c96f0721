// Package parser recovers structured JSON from free-text model output.
// It strips markdown fences, repairs output truncated mid-structure, and
// validates the parsed shape against a prompt-type-specific predicate.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors distinguishing the two failure tiers. They imply
// different remediation: a parse failure suggests retrying or a larger
// token budget, a schema failure suggests re-prompting with stricter
// instructions.
var (
	// ErrParse is returned when the payload is not JSON even after
	// truncation repair.
	ErrParse = errors.New("response is not parseable JSON")

	// ErrSchema is returned when the payload parsed but does not match
	// the shape required by its prompt type.
	ErrSchema = errors.New("response does not match expected schema")
)

// ParseError carries the raw text for diagnostics.
type ParseError struct {
	Raw   string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse, e.cause)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// SchemaError carries both the raw text and the parsed value for
// diagnostics.
type SchemaError struct {
	Raw    string
	Parsed json.RawMessage
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSchema, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// Validator is a structural predicate confirming a parsed response has
// the required keys and primitive types. It does not perform deep
// semantic checks.
type Validator func(data json.RawMessage) error

// Parse trims raw, strips a surrounding markdown fence if present,
// parses the JSON (repairing truncated output on a first failure), and
// runs the validator. The returned message is the cleaned, possibly
// repaired payload.
func Parse(raw string, v Validator) (json.RawMessage, error) {
	clean := StripFences(raw)

	var payload json.RawMessage
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		repaired := Repair(clean)
		if err2 := json.Unmarshal([]byte(repaired), &payload); err2 != nil {
			return nil, &ParseError{Raw: raw, cause: err}
		}
	}

	if v != nil {
		if verr := v(payload); verr != nil {
			return nil, &SchemaError{Raw: raw, Parsed: payload, Reason: verr.Error()}
		}
	}

	return payload, nil
}

// StripFences removes a leading/trailing markdown code fence. Models
// frequently wrap JSON in ```json fences despite instructions not to.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line ("```" or "```json").
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
