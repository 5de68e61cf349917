package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"professionals-api/internal/api/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	up := handlers.PingFunc(func(context.Context) error { return nil })
	down := handlers.PingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		db       handlers.Pinger
		redis    handlers.Pinger
		code     int
		expected map[string]any
	}{
		{"All up", up, up, http.StatusOK, map[string]any{"status": "ok", "database": "up", "redis": "up"}},
		{"Redis down", up, down, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "database": "up", "redis": "down"}},
		{"Database down", down, up, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "database": "down", "redis": "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter()
			router.GET("/health", handlers.NewHealthHandler(tt.db, tt.redis).HealthCheck)

			w := doJSON(router, http.MethodGet, "/health", "", nil)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.expected, decode(t, w))
		})
	}
}

func TestSPAHandler_NoRoute(t *testing.T) {
	router, _ := newRouter()
	router.NoRoute(handlers.NewSPAHandler("").NoRoute)

	t.Run("Client routes get the shell", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/dashboard/settings", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `<div id="app"></div>`)
	})

	t.Run("Unknown API routes are JSON 404s", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Route not found", decode(t, w)["error"])
	})

	t.Run("Non-GET requests are not served the shell", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/dashboard", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSPAHandler_CustomIndex(t *testing.T) {
	index := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(index, []byte("<html>built</html>"), 0o644))

	router, _ := newRouter()
	router.NoRoute(handlers.NewSPAHandler(index).NoRoute)

	req := httptest.NewRequest(http.MethodGet, "/companies/acme", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>built</html>", w.Body.String())
}
