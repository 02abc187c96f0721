package middleware

import (
	"net"
	"net/http"

	"github.com/quizforge/quizforge-api/internal/api/shared"
	"github.com/quizforge/quizforge-api/internal/ratelimit"
)

// rateLimitResponse is the 429 body. It carries the configured ceiling
// so clients can display "max N/min" without a second round trip.
type rateLimitResponse struct {
	Error   string `json:"error"`
	Limit   int    `json:"limit"`
	TraceID string `json:"trace_id,omitempty"`
}

// RateLimit rejects requests beyond the per-source sliding-window
// ceiling. Source identity is the client IP; run chi's RealIP before
// this so proxied deployments key on the original caller.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				shared.RespondWithJSON(w, r, http.StatusTooManyRequests, rateLimitResponse{
					Error:   "rate limit exceeded",
					Limit:   limiter.Limit(),
					TraceID: shared.GetTraceID(r.Context()),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
