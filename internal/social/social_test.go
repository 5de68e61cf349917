package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"professionals-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestRegistry_OnlyConfiguredProviders(t *testing.T) {
	r := NewRegistry(config.OAuthConfig{
		Google: config.OAuthProviderConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost/cb"},
	})

	p, ok := r.Get(ProviderGoogle)
	require.True(t, ok)
	assert.Equal(t, ProviderGoogle, p.Name())

	_, ok = r.Get(ProviderLinkedIn)
	assert.False(t, ok)
	_, ok = r.Get("github")
	assert.False(t, ok)
}

func TestGoogle_AuthCodeURLCarriesState(t *testing.T) {
	p := newGoogle(config.OAuthProviderConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost/cb"})

	u, err := url.Parse(p.AuthCodeURL("nonce-1"))
	require.NoError(t, err)
	assert.Equal(t, "nonce-1", u.Query().Get("state"))
	assert.Equal(t, "id", u.Query().Get("client_id"))
	assert.Contains(t, u.Query().Get("scope"), "email")
}

func TestLinkedIn_Exchange(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
	}{
		{"Verified email", true},
		{"Unverified email", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := linkedInAgainst(t, linkedInUserInfo{Sub: "li-1", Email: "ada@example.com", EmailVerified: tt.verified, Name: "Ada"})

			id, err := p.Exchange(context.Background(), "the-code")
			require.NoError(t, err)
			assert.Equal(t, &Identity{
				Provider:      ProviderLinkedIn,
				ProviderID:    "li-1",
				Email:         "ada@example.com",
				EmailVerified: tt.verified,
				Name:          "Ada",
			}, id)
		})
	}
}

// linkedInAgainst points a LinkedIn provider at a test server answering with info.
func linkedInAgainst(t *testing.T, info linkedInUserInfo) *linkedInProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "the-code", r.Form.Get("code"))
			assert.Equal(t, "id", r.Form.Get("client_id"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"access_token": "at", "token_type": "Bearer", "expires_in": 3600})
		case "/userinfo":
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(info)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	p := newLinkedIn(config.OAuthProviderConfig{ClientID: "id", ClientSecret: "secret"})
	p.conf.Endpoint = oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	p.userInfoURL = srv.URL + "/userinfo"
	return p
}
