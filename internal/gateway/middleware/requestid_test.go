package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docshare/internal/gateway/middleware"
)

func TestRequestIDMiddleware_AssignsID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	})
	h := middleware.RequestIDMiddleware(next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_KeepsProvidedID(t *testing.T) {
	h := middleware.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied", w.Header().Get(middleware.RequestIDHeader))
}
