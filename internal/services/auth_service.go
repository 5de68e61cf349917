package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"professionals-api/internal/auth"
	"professionals-api/internal/models"
	"professionals-api/internal/social"
	"professionals-api/internal/storage"
	"professionals-api/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

const (
	oauthStateTTL      = 10 * time.Minute
	resetTokenTTL      = 60 * time.Minute
	verificationURLTTL = 60 * time.Minute
)

type authService struct {
	users       storage.UserRepository
	profiles    storage.StudentProfileRepository
	tx          storage.TxManager
	tokens      *auth.TokenManager
	signer      *auth.URLSigner
	sessions    SessionStore
	oneTime     TokenStore
	providers   SocialProviders
	mailer      Mailer
	frontendURL string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	users storage.UserRepository,
	profiles storage.StudentProfileRepository,
	tx storage.TxManager,
	tokens *auth.TokenManager,
	signer *auth.URLSigner,
	sessions SessionStore,
	oneTime TokenStore,
	providers SocialProviders,
	mailer Mailer,
	frontendURL string,
) AuthService {
	return &authService{
		users:       users,
		profiles:    profiles,
		tx:          tx,
		tokens:      tokens,
		signer:      signer,
		sessions:    sessions,
		oneTime:     oneTime,
		providers:   providers,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(user *models.User, password string) bool {
	if user.PasswordHash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) == nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// createUser inserts the account and, for students, the empty profile.
func (s *authService) createUser(ctx context.Context, user *models.User) (*models.User, error) {
	var created *models.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		if created.Role == models.RoleStudent {
			return s.profiles.Create(ctx, created.ID)
		}
		return nil
	})
	if err != nil {
		return nil, MapRepoError(err, "creating user")
	}
	return created, nil
}

func (s *authService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Printf("AuthService: Error generating token for user %d: %v", user.ID, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}
	return &dto.AuthResponse{User: user, Token: token, ExpiresIn: int64(s.tokens.TTL().Seconds())}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user, err := s.createUser(ctx, &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: &hash,
		Role:         req.Role,
	})
	if err != nil {
		return nil, err
	}
	s.sendVerification(ctx, user)
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, MapRepoError(err, "fetching user for login")
	}
	if !checkPassword(user, req.Password) {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, ErrInvalidCredentials
	}
	if user.IsBanned() {
		return nil, ErrBanned
	}
	return s.issue(user)
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.sessions.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		log.Printf("AuthService: Error revoking token %s: %v", tokenID, err)
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *authService) SocialRedirect(ctx context.Context, provider string) (string, error) {
	p, ok := s.providers.Get(provider)
	if !ok {
		return "", ErrUnsupportedProvider
	}
	state, err := randomToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	if err := s.oneTime.StoreOAuthState(ctx, state, provider, oauthStateTTL); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}
	return p.AuthCodeURL(state), nil
}

func (s *authService) SocialCallback(ctx context.Context, req *dto.SocialCallbackRequest) (*dto.AuthResponse, error) {
	p, ok := s.providers.Get(req.Provider)
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	bound, ok, err := s.oneTime.ConsumeOAuthState(ctx, req.State)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth state: %w", err)
	}
	if !ok || bound != req.Provider {
		return nil, fmt.Errorf("%w: unknown oauth state", ErrUnauthorized)
	}

	identity, err := p.Exchange(ctx, req.Code)
	if err != nil {
		log.Printf("AuthService: %s exchange failed: %v", req.Provider, err)
		return nil, fmt.Errorf("%w: %s login failed", ErrUnauthorized, req.Provider)
	}

	user, err := s.findOrCreateSocialUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	if user.IsBanned() {
		return nil, ErrBanned
	}
	return s.issue(user)
}

// findOrCreateSocialUser matches on the provider identity, then on email, and
// otherwise registers a student. Matching by email and marking the address
// verified both require the provider to vouch for the email.
func (s *authService) findOrCreateSocialUser(ctx context.Context, identity *social.Identity) (*models.User, error) {
	provider, providerID, email, name := identity.Provider, identity.ProviderID, identity.Email, identity.Name
	user, err := s.users.GetByProvider(ctx, provider, providerID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "fetching social user")
	}

	user, err = s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !identity.EmailVerified {
			log.Printf("AuthService: Refusing to link unverified %s email to user %d", provider, user.ID)
			return nil, fmt.Errorf("%w: %s has not verified this email; sign in with your password", ErrConflict, provider)
		}
		if err := s.users.LinkProvider(ctx, user.ID, provider, providerID); err != nil {
			return nil, MapRepoError(err, "linking social account")
		}
		if user.EmailVerifiedAt == nil {
			if user, err = s.users.MarkEmailVerified(ctx, user.ID); err != nil {
				return nil, MapRepoError(err, "verifying email")
			}
		}
		return user, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, MapRepoError(err, "fetching user by email")
	}

	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	user = &models.User{
		Name:       name,
		Email:      email,
		Role:       models.RoleStudent,
		Provider:   &provider,
		ProviderID: &providerID,
	}
	if identity.EmailVerified {
		now := time.Now().UTC()
		user.EmailVerifiedAt = &now
	}
	return s.createUser(ctx, user)
}

// ForgotPassword never reveals whether the email is registered.
func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "fetching user for password reset")
	}
	token, err := randomToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.oneTime.StoreResetToken(ctx, user.Email, token, resetTokenTTL); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s", s.frontendURL, token, url.QueryEscape(user.Email))
	body := fmt.Sprintf("Hello %s,\n\nUse the link below to reset your password. It expires in %d minutes.\n\n%s\n",
		user.Name, int(resetTokenTTL.Minutes()), link)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		log.Printf("AuthService: Error sending reset mail to %s: %v", user.Email, err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	ok, err := s.oneTime.ConsumeResetToken(ctx, req.Email, req.Token)
	if err != nil {
		return fmt.Errorf("failed to check reset token: %w", err)
	}
	if !ok {
		return fieldError("token", "invalid or expired reset token")
	}
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fieldError("email", "no account for this email")
		}
		return MapRepoError(err, "fetching user for password reset")
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	if err := s.users.SetPassword(ctx, user.ID, hash); err != nil {
		return MapRepoError(err, "resetting password")
	}
	if err := s.sessions.RevokeUserSessions(ctx, user.ID, s.tokens.TTL()); err != nil {
		log.Printf("AuthService: Error revoking sessions of user %d after password reset: %v", user.ID, err)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*models.User, error) {
	if req.ID != req.UserID {
		return nil, fmt.Errorf("%w: verification link belongs to another account", ErrForbidden)
	}
	if err := s.signer.Verify(req.Path, req.Expires, req.Signature); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForbidden, err)
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, MapRepoError(err, "fetching user for verification")
	}
	if auth.EmailHash(user.Email) != req.Hash {
		return nil, fmt.Errorf("%w: verification link does not match email", ErrForbidden)
	}
	if user.EmailVerifiedAt != nil {
		return user, nil
	}
	user, err = s.users.MarkEmailVerified(ctx, user.ID)
	return user, MapRepoError(err, "verifying email")
}

func (s *authService) ResendVerification(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return MapRepoError(err, "fetching user")
	}
	if user.EmailVerifiedAt != nil {
		return fmt.Errorf("%w: email already verified", ErrConflict)
	}
	s.sendVerification(ctx, user)
	return nil
}

func (s *authService) sendVerification(ctx context.Context, user *models.User) {
	if user.EmailVerifiedAt != nil {
		return
	}
	link := s.signer.Sign(auth.VerificationPath(user.ID, user.Email), verificationURLTTL)
	body := fmt.Sprintf("Hello %s,\n\nPlease confirm your email address:\n\n%s\n", user.Name, link)
	if err := s.mailer.Send(ctx, user.Email, "Verify your email address", body); err != nil {
		log.Printf("AuthService: Error sending verification mail to %s: %v", user.Email, err)
	}
}
