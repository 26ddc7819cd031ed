package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// ContextKeyRequestID carries the request ID through the request context
const ContextKeyRequestID contextKey = "requestID"

// RequestIDHeader is the response header exposing the request ID
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware assigns every request a UUID, stored in the
// context and echoed in the response headers
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), ContextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, if any
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
