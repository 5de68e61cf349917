package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"professionals-api/internal/api/middleware"
	"professionals-api/internal/auth"
	"professionals-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessions) SessionsRevokedAt(ctx context.Context, userID int64) (time.Time, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *mockSessions) IsBanned(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Int(1), args.Get(2).(time.Duration), args.Error(3)
}

const cookieName = "professionals_session"

func setupAuthRouter(sessions *mockSessions, tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	a := middleware.NewAuthenticator(tokens, sessions, cookieName)
	r := gin.New()
	whoami := func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "role": p.Role})
	}
	r.GET("/me", a.Required(), whoami)
	r.GET("/admin", a.Required(), middleware.RequireRoles(models.RoleAdmin), whoami)
	r.GET("/optional", a.Optional(), whoami)
	return r
}

func request(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticator_Required(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, claims, err := tokens.Issue(11, models.RoleStudent)
	require.NoError(t, err)

	t.Run("No token", func(t *testing.T) {
		w := request(setupAuthRouter(new(mockSessions), tokens), "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		r := setupAuthRouter(new(mockSessions), tokens)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		forged, _, err := auth.NewTokenManager("other", time.Hour).Issue(11, models.RoleAdmin)
		require.NoError(t, err)
		w := request(setupAuthRouter(new(mockSessions), tokens), "/me", forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(time.Time{}, nil).Once()
		sessions.On("IsBanned", mock.Anything, int64(11)).Return(false, nil).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":11,"role":"student"}`, w.Body.String())
	})

	t.Run("Session cookie", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(time.Time{}, nil).Once()
		sessions.On("IsBanned", mock.Anything, int64(11)).Return(false, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		w := httptest.NewRecorder()

		setupAuthRouter(sessions, tokens).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Revoked token", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(true, nil).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token issued before the session cutoff", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(claims.IssuedAt.Time, nil).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		sessions.AssertNotCalled(t, "IsBanned", mock.Anything, mock.Anything)
	})

	t.Run("Token issued after the session cutoff", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(claims.IssuedAt.Time.Add(-time.Minute), nil).Once()
		sessions.On("IsBanned", mock.Anything, int64(11)).Return(false, nil).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Banned account", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(time.Time{}, nil).Once()
		sessions.On("IsBanned", mock.Anything, int64(11)).Return(true, nil).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Session store down fails open", func(t *testing.T) {
		sessions := new(mockSessions)
		sessions.On("IsRevoked", mock.Anything, claims.ID).Return(false, errors.New("redis down")).Once()
		sessions.On("SessionsRevokedAt", mock.Anything, int64(11)).Return(time.Time{}, errors.New("redis down")).Once()
		sessions.On("IsBanned", mock.Anything, int64(11)).Return(false, errors.New("redis down")).Once()

		w := request(setupAuthRouter(sessions, tokens), "/me", token)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	sessions := new(mockSessions)
	sessions.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)
	sessions.On("SessionsRevokedAt", mock.Anything, mock.Anything).Return(time.Time{}, nil)
	sessions.On("IsBanned", mock.Anything, mock.Anything).Return(false, nil)
	r := setupAuthRouter(sessions, tokens)

	student, _, err := tokens.Issue(11, models.RoleStudent)
	require.NoError(t, err)
	admin, _, err := tokens.Issue(1, models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, request(r, "/admin", student).Code)
	assert.Equal(t, http.StatusOK, request(r, "/admin", admin).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "/admin", "").Code)
}

func TestAuthenticator_Optional(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(new(mockSessions), tokens)

	w := request(r, "/optional", "not-a-jwt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0}`, w.Body.String())
}

func TestThrottle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setup := func(l *mockLimiter) *gin.Engine {
		r := gin.New()
		r.Use(middleware.Throttle(l, 60))
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return r
	}

	t.Run("Within limit", func(t *testing.T) {
		l := new(mockLimiter)
		l.On("Allow", mock.Anything, mock.AnythingOfType("string"), 60, time.Minute).Return(true, 59, 40*time.Second, nil).Once()

		w := request(setup(l), "/ping", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "59", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("Over limit", func(t *testing.T) {
		l := new(mockLimiter)
		l.On("Allow", mock.Anything, mock.AnythingOfType("string"), 60, time.Minute).Return(false, 0, 1500*time.Millisecond, nil).Once()

		w := request(setup(l), "/ping", "")

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
	})

	t.Run("Limiter error lets the request through", func(t *testing.T) {
		l := new(mockLimiter)
		l.On("Allow", mock.Anything, mock.AnythingOfType("string"), 60, time.Minute).Return(false, 0, time.Duration(0), errors.New("redis down")).Once()

		w := request(setup(l), "/ping", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := request(r, "/ping", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
