package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"professionals-api/internal/auth"
	"professionals-api/internal/mocks"
	"professionals-api/internal/models"
	"professionals-api/internal/services"
	"professionals-api/internal/social"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authDeps struct {
	users     *mocks.MockUserRepository
	profiles  *mocks.MockStudentProfileRepository
	sessions  *mocks.MockSessionStore
	oneTime   *mocks.MockTokenStore
	providers *mocks.MockSocialProviders
	mailer    *mocks.MockMailer
	tokens    *auth.TokenManager
}

func setupAuthServiceTest() (context.Context, services.AuthService, authDeps) {
	d := authDeps{
		users:     new(mocks.MockUserRepository),
		profiles:  new(mocks.MockStudentProfileRepository),
		sessions:  new(mocks.MockSessionStore),
		oneTime:   new(mocks.MockTokenStore),
		providers: new(mocks.MockSocialProviders),
		mailer:    new(mocks.MockMailer),
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
	}
	svc := services.NewAuthService(d.users, d.profiles, mocks.TxManager{}, d.tokens,
		auth.NewURLSigner("signing-key", "http://localhost:8080"),
		d.sessions, d.oneTime, d.providers, d.mailer, "http://localhost:3000/")
	return context.Background(), svc, d
}

func userWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	return &models.User{ID: 11, Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent, PasswordHash: &h}
}

func TestAuthService_Register_Student(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ada@example.com" && u.Role == models.RoleStudent && u.PasswordHash != nil &&
			bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret123")) == nil
	})).Return(&models.User{ID: 11, Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent}, nil).Once()
	d.profiles.On("Create", ctx, int64(11)).Return(nil).Once()
	d.mailer.On("Send", ctx, "ada@example.com", "Verify your email address", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "http://localhost:8080/api/auth/email/verify/11/")
	})).Return(nil).Once()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:                 " Ada ",
		Email:                "ada@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Role:                 models.RoleStudent,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	claims, err := d.tokens.Parse(resp.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	d.profiles.AssertExpectations(t)
	d.mailer.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.users.On("Create", ctx, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", PasswordConfirmation: "secret123", Role: models.RoleCompany,
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(userWithPassword(t, "secret123"), nil).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(11), resp.User.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(userWithPassword(t, "secret123"), nil).Once()

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "nope"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Banned", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		u := userWithPassword(t, "secret123")
		u.BannedAt = ptr(fixedTime)
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(u, nil).Once()

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})

		assert.ErrorIs(t, err, services.ErrBanned)
	})

	t.Run("Social-only account", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(&models.User{ID: 11, Email: "ada@example.com"}, nil).Once()

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "anything"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.sessions.On("Revoke", ctx, "jti-1", mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 50*time.Minute && ttl <= time.Hour
	})).Return(nil).Once()

	require.NoError(t, svc.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	d.sessions.AssertExpectations(t)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("Unknown email is silent", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, storage.ErrNotFound).Once()

		require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ghost@example.com"}))
		d.oneTime.AssertNotCalled(t, "StoreResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Mails a reset link", func(t *testing.T) {
		ctx, svc, d := setupAuthServiceTest()
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(&models.User{ID: 11, Name: "Ada", Email: "ada@example.com"}, nil).Once()
		d.oneTime.On("StoreResetToken", ctx, "ada@example.com", mock.AnythingOfType("string"), time.Hour).Return(nil).Once()
		d.mailer.On("Send", ctx, "ada@example.com", "Reset your password", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "http://localhost:3000/reset-password?token=")
		})).Return(nil).Once()

		require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ada@example.com"}))
		d.oneTime.AssertExpectations(t)
		d.mailer.AssertExpectations(t)
	})
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.oneTime.On("ConsumeResetToken", ctx, "ada@example.com", "bad").Return(false, nil).Once()

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email: "ada@example.com", Token: "bad", Password: "newsecret", PasswordConfirmation: "newsecret",
	})

	assertFieldError(t, err, "token")
	d.users.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_RevokesSessions(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.oneTime.On("ConsumeResetToken", ctx, "ada@example.com", "good").Return(true, nil).Once()
	d.users.On("GetByEmail", ctx, "ada@example.com").Return(userWithPassword(t, "old-secret"), nil).Once()
	d.users.On("SetPassword", ctx, int64(11), mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")) == nil
	})).Return(nil).Once()
	d.sessions.On("RevokeUserSessions", ctx, int64(11), time.Hour).Return(nil).Once()

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email: "ada@example.com", Token: "good", Password: "newsecret", PasswordConfirmation: "newsecret",
	})

	require.NoError(t, err)
	d.users.AssertExpectations(t)
	d.sessions.AssertExpectations(t)
}

// stubProvider returns a fixed identity from Exchange.
type stubProvider struct {
	identity *social.Identity
}

func (p stubProvider) Name() string { return p.identity.Provider }
func (p stubProvider) AuthCodeURL(string) string { return "https://accounts.example.com/auth" }
func (p stubProvider) Exchange(context.Context, string) (*social.Identity, error) { return p.identity, nil }

func TestAuthService_SocialCallback(t *testing.T) {
	setup := func(verified bool) (context.Context, services.AuthService, authDeps) {
		ctx, svc, d := setupAuthServiceTest()
		identity := &social.Identity{Provider: social.ProviderGoogle, ProviderID: "g-1", Email: "ada@example.com", EmailVerified: verified, Name: "Ada"}
		d.providers.On("Get", social.ProviderGoogle).Return(stubProvider{identity: identity}, true).Once()
		d.oneTime.On("ConsumeOAuthState", ctx, "state-1").Return(social.ProviderGoogle, true, nil).Once()
		d.users.On("GetByProvider", ctx, social.ProviderGoogle, "g-1").Return(nil, storage.ErrNotFound).Once()
		return ctx, svc, d
	}
	req := &dto.SocialCallbackRequest{Provider: social.ProviderGoogle, Code: "code", State: "state-1"}

	t.Run("Unverified email does not take over an existing account", func(t *testing.T) {
		ctx, svc, d := setup(false)
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(userWithPassword(t, "secret123"), nil).Once()

		_, err := svc.SocialCallback(ctx, req)

		assert.ErrorIs(t, err, services.ErrConflict)
		d.users.AssertNotCalled(t, "LinkProvider", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.users.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
	})

	t.Run("Verified email links the existing account", func(t *testing.T) {
		ctx, svc, d := setup(true)
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(userWithPassword(t, "secret123"), nil).Once()
		d.users.On("LinkProvider", ctx, int64(11), social.ProviderGoogle, "g-1").Return(nil).Once()
		d.users.On("MarkEmailVerified", ctx, int64(11)).
			Return(&models.User{ID: 11, Email: "ada@example.com", Role: models.RoleStudent, EmailVerifiedAt: ptr(fixedTime)}, nil).Once()

		resp, err := svc.SocialCallback(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.User.ID)
		assert.NotEmpty(t, resp.Token)
		d.users.AssertExpectations(t)
	})

	t.Run("Unverified email registers an unverified student", func(t *testing.T) {
		ctx, svc, d := setup(false)
		d.users.On("GetByEmail", ctx, "ada@example.com").Return(nil, storage.ErrNotFound).Once()
		d.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ada@example.com" && u.EmailVerifiedAt == nil && u.Role == models.RoleStudent
		})).Return(&models.User{ID: 12, Email: "ada@example.com", Role: models.RoleStudent}, nil).Once()
		d.profiles.On("Create", ctx, int64(12)).Return(nil).Once()

		resp, err := svc.SocialCallback(ctx, req)

		require.NoError(t, err)
		assert.Nil(t, resp.User.EmailVerifiedAt)
		d.users.AssertExpectations(t)
	})
}

func TestAuthService_SocialRedirect_UnknownProvider(t *testing.T) {
	ctx, svc, d := setupAuthServiceTest()
	d.providers.On("Get", "github").Return(nil, false).Once()

	_, err := svc.SocialRedirect(ctx, "github")

	assert.ErrorIs(t, err, services.ErrUnsupportedProvider)
}
