package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrLinkExpired      = errors.New("link expired")
)

// EmailHash is the hash segment of an email verification link.
func EmailHash(email string) string {
	sum := sha1.Sum([]byte(strings.ToLower(email)))
	return hex.EncodeToString(sum[:])
}

// URLSigner builds and checks expiring links signed with the app key.
type URLSigner struct {
	key     []byte
	baseURL string
	now     func() time.Time
}

// NewURLSigner creates a URLSigner producing absolute links under baseURL.
func NewURLSigner(key, baseURL string) *URLSigner {
	return &URLSigner{key: []byte(key), baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

func (s *URLSigner) sign(path, expires string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(path + "?expires=" + expires))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign returns baseURL+path with expires and signature query parameters.
func (s *URLSigner) Sign(path string, ttl time.Duration) string {
	expires := strconv.FormatInt(s.now().Add(ttl).Unix(), 10)
	q := url.Values{}
	q.Set("expires", expires)
	q.Set("signature", s.sign(path, expires))
	return s.baseURL + path + "?" + q.Encode()
}

// VerificationPath is the API path of the email verification link for a user.
func VerificationPath(userID int64, email string) string {
	return fmt.Sprintf("/api/auth/email/verify/%d/%s", userID, EmailHash(email))
}

// Verify checks a signature produced by Sign for path.
func (s *URLSigner) Verify(path, expires, signature string) error {
	want := s.sign(path, expires)
	if !hmac.Equal([]byte(want), []byte(signature)) {
		return ErrInvalidSignature
	}
	ts, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	if s.now().Unix() > ts {
		return ErrLinkExpired
	}
	return nil
}
