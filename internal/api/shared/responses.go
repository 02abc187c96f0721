// Package shared holds response and request helpers used by every API
// handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge-api/internal/redact"
)

// ErrorResponse is the standard error body. Message carries the
// underlying failure detail (redacted); Error is the stable summary.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithError writes a JSON error response carrying only the
// summary message and the trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes an error response that includes the
// redacted failure detail, and logs it. 5xx errors log at ERROR, 429 at
// WARN, other 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	summary string,
	err error,
) {
	traceID := GetTraceID(r.Context())
	detail := redact.Error(err)

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status == http.StatusTooManyRequests:
		level = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), level, "API error response",
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("summary", summary),
		slog.String("error", detail))

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   summary,
		Message: detail,
		TraceID: traceID,
	})
}
