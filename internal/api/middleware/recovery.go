package middleware

import (
	"log/slog"
	"net/http"

	"github.com/vendify/vendify-api/internal/api/shared"
)

// Recovery catches panics anywhere in the handler pipeline, logs them and
// returns the standard JSON 500 envelope so a single bad request never
// kills the process or leaks a stack trace to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered while handling request",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", shared.GetRequestID(r.Context())))
				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Erro interno do servidor")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
