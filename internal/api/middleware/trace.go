// Package middleware holds the HTTP middleware chain pieces that are
// specific to this API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Apply it early so every
// downstream handler and error response can correlate.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.DebugContext(ctx, "request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
