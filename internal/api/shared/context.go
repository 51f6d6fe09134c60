package shared

import "context"

// Key type for context values
type ContextKey string

// RequestIDKey is the key for the request ID in the request context.
const RequestIDKey ContextKey = "requestID"

// SetRequestID stores the request ID in the context.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// If no request ID exists, it returns an empty string.
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return requestID
}
