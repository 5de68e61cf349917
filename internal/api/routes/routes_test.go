package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"professionals-api/config"
	"professionals-api/internal/api/routes"
	"professionals-api/internal/app"
	"professionals-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRouter wires the full application without a database. Redis points at
// a closed port so session checks fail open. Handlers that reach Postgres
// must not be exercised here.
func setupRouter(t *testing.T) (*gin.Engine, *app.Application) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:     config.ServerConfig{Mode: gin.TestMode},
		JWT:        config.JWTConfig{Secret: "routes-test-secret", Expiration: time.Hour, CookieName: "professionals_session"},
		App:        config.AppConfig{BaseURL: "http://localhost:8080", FrontendURL: "http://localhost:3000", Key: "routes-test-key"},
		Storage:    config.StorageConfig{BasePath: t.TempDir()},
		Pagination: config.PaginationConfig{DefaultPageSize: 15, MaxPageSize: 100},
	}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { rdb.Close() })

	application, err := app.New(cfg, nil, rdb)
	require.NoError(t, err)

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router, application
}

func serve(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_Table(t *testing.T) {
	router, _ := setupRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/social/:provider/callback",
		"GET /api/auth/email/verify/:id/:hash",
		"GET /api/me",
		"GET /api/offers",
		"GET /api/offers/:slug",
		"GET /api/companies/:slug",
		"GET /api/companies/:slug/hr-contacts",
		"POST /api/companies/:slug/reviews",
		"POST /api/my-company/offers/:id/publish",
		"POST /api/my-company/org/reorder",
		"POST /api/applications",
		"POST /api/reviews/:id/vote",
		"POST /api/conversations/:id/messages",
		"POST /api/bookmarks/toggle",
		"POST /api/track/view",
		"GET /api/admin/dashboard",
		"GET /health",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRegisterRoutes_Guards(t *testing.T) {
	router, application := setupRouter(t)
	issue := func(userID int64, role models.Role) string {
		token, _, err := application.Tokens.Issue(userID, role)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   int
	}{
		{"Profile needs a session", http.MethodGet, "/api/me", "", http.StatusUnauthorized},
		{"Students cannot manage companies", http.MethodGet, "/api/my-company/offers", issue(11, models.RoleStudent), http.StatusForbidden},
		{"Companies cannot apply", http.MethodPost, "/api/applications", issue(21, models.RoleCompany), http.StatusForbidden},
		{"Admin area is for admins", http.MethodGet, "/api/admin/users", issue(21, models.RoleCompany), http.StatusForbidden},
		{"Forged token", http.MethodGet, "/api/me", "not.a.token", http.StatusUnauthorized},
		{"HR contacts need a session before the slug is resolved", http.MethodGet, "/api/companies/ghost/hr-contacts", "", http.StatusUnauthorized},
		{"Reviews need a session before the slug is resolved", http.MethodPost, "/api/companies/ghost/reviews", "", http.StatusUnauthorized},
		{"Companies cannot write reviews", http.MethodPost, "/api/companies/ghost/reviews", issue(21, models.RoleCompany), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestRegisterRoutes_Auth(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("Malformed login body", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/api/auth/login", "", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid login email", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/api/auth/login", "", `{"email":"nope","password":"secret"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Unconfigured provider", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/auth/social/github", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegisterRoutes_Fallback(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, http.MethodGet, "/api/does-not-exist", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["error"])

	w = serve(router, http.MethodGet, "/companies/acme/reviews", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
