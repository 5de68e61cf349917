package mocks

import (
	"context"
	"time"

	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/social"

	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a testify mock of services.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) RevokeUserSessions(ctx context.Context, userID int64, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Ban(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionStore) Unban(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ services.SessionStore = (*MockSessionStore)(nil)

// MockTokenStore is a testify mock of services.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreResetToken(ctx context.Context, email string, token string, ttl time.Duration) error {
	args := m.Called(ctx, email, token, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) ConsumeResetToken(ctx context.Context, email string, token string) (bool, error) {
	args := m.Called(ctx, email, token)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

func (m *MockTokenStore) StoreOAuthState(ctx context.Context, state string, provider string, ttl time.Duration) error {
	args := m.Called(ctx, state, provider, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) ConsumeOAuthState(ctx context.Context, state string) (string, bool, error) {
	args := m.Called(ctx, state)
	r0, _ := args.Get(0).(string)
	r1, _ := args.Get(1).(bool)
	return r0, r1, args.Error(2)
}

var _ services.TokenStore = (*MockTokenStore)(nil)

// MockSearchCache is a testify mock of services.SearchCache.
type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) IncrementSearch(ctx context.Context, term string) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockSearchCache) TopSearches(ctx context.Context, n int) ([]models.TrendingTerm, error) {
	args := m.Called(ctx, n)
	r0, _ := args.Get(0).([]models.TrendingTerm)
	return r0, args.Error(1)
}

func (m *MockSearchCache) GetJSON(ctx context.Context, key string, dst any) error {
	args := m.Called(ctx, key, dst)
	return args.Error(0)
}

func (m *MockSearchCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	args := m.Called(ctx, key, v, ttl)
	return args.Error(0)
}

var _ services.SearchCache = (*MockSearchCache)(nil)

// MockViewDeduper is a testify mock of services.ViewDeduper.
type MockViewDeduper struct {
	mock.Mock
}

func (m *MockViewDeduper) FirstView(ctx context.Context, target string, viewer string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, target, viewer, ttl)
	r0, _ := args.Get(0).(bool)
	return r0, args.Error(1)
}

var _ services.ViewDeduper = (*MockViewDeduper)(nil)

// MockFileStore is a testify mock of services.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ services.FileStore = (*MockFileStore)(nil)

// MockMailer is a testify mock of services.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to string, subject string, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

var _ services.Mailer = (*MockMailer)(nil)

// MockSocialProviders is a testify mock of services.SocialProviders.
type MockSocialProviders struct {
	mock.Mock
}

func (m *MockSocialProviders) Get(name string) (social.Provider, bool) {
	args := m.Called(name)
	r0, _ := args.Get(0).(social.Provider)
	r1, _ := args.Get(1).(bool)
	return r0, r1
}

var _ services.SocialProviders = (*MockSocialProviders)(nil)

// MockNotifier is a testify mock of services.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID int64, kind string, title string, body string, data map[string]any) {
	m.Called(ctx, userID, kind, title, body, data)
}

var _ services.Notifier = (*MockNotifier)(nil)

