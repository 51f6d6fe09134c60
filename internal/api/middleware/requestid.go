// Package middleware provides the HTTP middleware applied by the router.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/api/shared"
)

// requestIDHeader is honored when a proxy or client already assigned an ID.
const requestIDHeader = "X-Request-Id"

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestID attaches a request ID to the context and response headers and
// logs each request with it. The incoming X-Request-Id header is reused
// when present so IDs stay stable across proxies; otherwise a new UUID is
// generated. This middleware should be applied early in the chain so all
// subsequent handlers see the ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := shared.SetRequestID(r.Context(), requestID)
		w.Header().Set(requestIDHeader, requestID)

		log := slog.With(slog.String("request_id", requestID))
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}
