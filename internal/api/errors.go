package api

import (
	"errors"
	"net/http"

	"github.com/vendify/vendify-api/internal/api/shared"
	"github.com/vendify/vendify-api/internal/store"
)

// Shared error messages of the wire format.
const (
	msgInvalidPayload = "Payload inválido"
	msgInternalError  = "Erro interno do servidor"
	msgRouteNotFound  = "Rota não encontrada"
)

// MapErrorToStatusCode maps store errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, store.ErrEmptyPatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotFound is the fallback handler for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgRouteNotFound)
}

// storeErrorMessages carries the operation-specific sanitized messages a
// handler exposes for each mapped status class.
type storeErrorMessages struct {
	NotFound string
	Conflict string
	Internal string
}

// respondStoreError maps a store error onto the HTTP response, choosing
// the sanitized message by status class. The raw error is logged, never
// exposed.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, msgs storeErrorMessages) {
	status := MapErrorToStatusCode(err)

	var message string
	switch status {
	case http.StatusNotFound:
		message = msgs.NotFound
	case http.StatusConflict:
		message = msgs.Conflict
	case http.StatusBadRequest:
		message = msgInvalidPayload
	default:
		message = msgs.Internal
	}
	if message == "" {
		message = msgInternalError
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
