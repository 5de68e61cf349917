package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"professionals-api/internal/api/handlers"
	"professionals-api/internal/api/middleware"
	"professionals-api/internal/auth"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testTokens = auth.NewTokenManager("handler-test-secret", time.Hour)

// openSessions treats every token as live.
type openSessions struct{}

func (openSessions) IsRevoked(context.Context, string) (bool, error) { return false, nil }
func (openSessions) SessionsRevokedAt(context.Context, int64) (time.Time, error) {
	return time.Time{}, nil
}
func (openSessions) IsBanned(context.Context, int64) (bool, error) { return false, nil }

func newBinder() handlers.Binder {
	return handlers.NewBinder(handlers.NewValidator(), pagination.Config{DefaultPageSize: 15, MaxPageSize: 100}, 1<<20)
}

func newRouter() (*gin.Engine, *middleware.Authenticator) {
	gin.SetMode(gin.TestMode)
	return gin.New(), middleware.NewAuthenticator(testTokens, openSessions{}, "")
}

func tokenFor(t *testing.T, userID int64, role models.Role) string {
	t.Helper()
	token, _, err := testTokens.Issue(userID, role)
	require.NoError(t, err)
	return token
}

func doJSON(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
