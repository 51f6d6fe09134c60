// Package shared holds the request/response plumbing used by every API
// handler: JSON encoding, the error envelope, query-string parsing and
// the request-ID context helpers.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vendify/vendify-api/internal/store"
)

// FieldIssue describes a single validation failure in a request payload.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error     string       `json:"error"`
	Details   []FieldIssue `json:"details,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// ListMeta carries the pagination metadata of a list response.
type ListMeta struct {
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Order store.Order `json:"order"`
}

// ListEnvelope is the standard list response body: the page of records
// plus its metadata.
type ListEnvelope struct {
	Data any      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. The request ID from the context is echoed back so clients
// can correlate failures with server logs.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{
		Error:     message,
		RequestID: GetRequestID(r.Context()),
	})
}

// RespondWithValidationError writes a 400 response carrying the per-field
// issue list produced by request validation.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, message string, issues []FieldIssue) {
	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Error:     message,
		Details:   issues,
		RequestID: GetRequestID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a JSON error response and logs the detailed
// error. The raw error is only ever logged; clients receive the sanitized
// message.
//
// Log level strategy: 5xx errors at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	requestID := GetRequestID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:     userMessage,
		RequestID: requestID,
	})
}
