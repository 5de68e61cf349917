// Package social implements the OAuth2 login flows for Google and LinkedIn.
package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"professionals-api/config"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	ProviderGoogle   = "google"
	ProviderLinkedIn = "linkedin"

	linkedInUserInfoURL = "https://api.linkedin.com/v2/userinfo"
)

var ErrNoEmail = errors.New("provider did not return an email address")

// Identity is the account information returned by a provider.
// EmailVerified is the provider's own claim that the address belongs to the user.
type Identity struct {
	Provider      string
	ProviderID    string
	Email         string
	EmailVerified bool
	Name          string
}

// Provider drives one OAuth2 authorization code flow.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Identity, error)
}

// Registry holds the providers that have credentials configured.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(cfg config.OAuthConfig) *Registry {
	r := &Registry{providers: map[string]Provider{}}
	if cfg.Google.Enabled() {
		r.Register(newGoogle(cfg.Google))
	}
	if cfg.LinkedIn.Enabled() {
		r.Register(newLinkedIn(cfg.LinkedIn))
	}
	return r
}

func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns the provider called name, if it is configured.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

func oauthConfig(cfg config.OAuthProviderConfig, endpoint oauth2.Endpoint, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
}

// --- Google ---

type googleProvider struct {
	conf     *oauth2.Config
	verifier googleAuthIDTokenVerifier.Verifier
}

func newGoogle(cfg config.OAuthProviderConfig) *googleProvider {
	return &googleProvider{conf: oauthConfig(cfg, endpoints.Google, "openid", "email", "profile")}
}

func (p *googleProvider) Name() string { return ProviderGoogle }

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the code for tokens and reads the identity from the verified ID token.
func (p *googleProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google: exchange code: %w", err)
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, fmt.Errorf("google: id_token missing from token response")
	}
	if err := p.verifier.VerifyIDToken(idToken, []string{p.conf.ClientID}); err != nil {
		return nil, fmt.Errorf("google: verify id_token: %w", err)
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("google: decode id_token: %w", err)
	}
	if claimSet.Email == "" {
		return nil, ErrNoEmail
	}
	return &Identity{
		Provider:      ProviderGoogle,
		ProviderID:    claimSet.Sub,
		Email:         claimSet.Email,
		EmailVerified: claimSet.EmailVerified,
		Name:          claimSet.Name,
	}, nil
}

// --- LinkedIn ---

type linkedInProvider struct {
	conf        *oauth2.Config
	userInfoURL string
}

func newLinkedIn(cfg config.OAuthProviderConfig) *linkedInProvider {
	endpoint := endpoints.LinkedIn
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	return &linkedInProvider{
		conf:        oauthConfig(cfg, endpoint, "openid", "profile", "email"),
		userInfoURL: linkedInUserInfoURL,
	}
}

func (p *linkedInProvider) Name() string { return ProviderLinkedIn }

func (p *linkedInProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

type linkedInUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// Exchange trades the code for an access token and reads the OIDC userinfo endpoint.
func (p *linkedInProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("linkedin: exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin: userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkedin: userinfo returned %s", resp.Status)
	}

	var info linkedInUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("linkedin: decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, ErrNoEmail
	}
	return &Identity{
		Provider:      ProviderLinkedIn,
		ProviderID:    info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
	}, nil
}
