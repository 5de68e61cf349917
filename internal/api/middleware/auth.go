package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"professionals-api/internal/auth"
	"professionals-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	principalCtx        = "principal" // Key to store the authenticated caller in context
)

// Principal is the authenticated caller.
type Principal struct {
	UserID    int64
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

// SessionChecker reports revoked tokens and banned accounts.
// SessionsRevokedAt returns the zero time when the user has no cutoff.
type SessionChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	SessionsRevokedAt(ctx context.Context, userID int64) (time.Time, error)
	IsBanned(ctx context.Context, userID int64) (bool, error)
}

// Authenticator resolves the caller from a bearer token or the session cookie.
type Authenticator struct {
	tokens     *auth.TokenManager
	sessions   SessionChecker
	cookieName string
}

func NewAuthenticator(tokens *auth.TokenManager, sessions SessionChecker, cookieName string) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions, cookieName: cookieName}
}

var (
	errNoToken       = errors.New("authentication required")
	errBadHeader     = errors.New("invalid Authorization header format")
	errTokenExpired  = errors.New("token has expired")
	errInvalidToken  = errors.New("invalid token")
	errTokenRevoked  = errors.New("token has been revoked")
	errAccountBanned = errors.New("account is banned")
)

func (a *Authenticator) tokenFrom(c *gin.Context) (string, error) {
	if header := c.GetHeader(authorizationHeader); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return "", errBadHeader
		}
		return parts[1], nil
	}
	if a.cookieName != "" {
		if cookie, err := c.Cookie(a.cookieName); err == nil && cookie != "" {
			return cookie, nil
		}
	}
	return "", errNoToken
}

// authenticate returns the principal, or the error to report with its status.
func (a *Authenticator) authenticate(c *gin.Context) (*Principal, int, error) {
	raw, err := a.tokenFrom(c)
	if err != nil {
		return nil, http.StatusUnauthorized, err
	}
	claims, err := a.tokens.Parse(raw)
	if err != nil {
		log.Printf("Auth middleware: Error parsing token: %v", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, http.StatusUnauthorized, errTokenExpired
		}
		return nil, http.StatusUnauthorized, errInvalidToken
	}
	userID, _ := claims.UserID()
	ctx := c.Request.Context()

	// Redis outages fail open: the token signature has already been verified.
	if revoked, err := a.sessions.IsRevoked(ctx, claims.ID); err != nil {
		log.Printf("Auth middleware: Error checking revocation of %s: %v", claims.ID, err)
	} else if revoked {
		return nil, http.StatusUnauthorized, errTokenRevoked
	}
	if cutoff, err := a.sessions.SessionsRevokedAt(ctx, userID); err != nil {
		log.Printf("Auth middleware: Error checking session cutoff of user %d: %v", userID, err)
	} else if !cutoff.IsZero() && (claims.IssuedAt == nil || !claims.IssuedAt.Time.After(cutoff)) {
		return nil, http.StatusUnauthorized, errTokenRevoked
	}
	if banned, err := a.sessions.IsBanned(ctx, userID); err != nil {
		log.Printf("Auth middleware: Error checking ban of user %d: %v", userID, err)
	} else if banned {
		return nil, http.StatusForbidden, errAccountBanned
	}

	p := &Principal{UserID: userID, Role: claims.Role, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, 0, nil
}

// Required aborts with 401 unless the request carries a valid, unrevoked token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, status, err := a.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Set(principalCtx, p)
		c.Next()
	}
}

// Optional sets the principal when a valid token is present and never aborts.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, _, err := a.authenticate(c); err == nil {
			c.Set(principalCtx, p)
		}
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the principal has one of roles.
// It must run after Required.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errNoToken.Error()})
			return
		}
		if !slices.Contains(roles, p.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action is not allowed for your role"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the caller set by Required or Optional.
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalCtx)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// GetUserIDFromContext returns the authenticated user id.
func GetUserIDFromContext(c *gin.Context) (int64, error) {
	p, ok := GetPrincipal(c)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return p.UserID, nil
}
