package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ProviderGoogle is the provider id stored with Google links.
const ProviderGoogle = "google"

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleConfig holds the Google OAuth client settings. Google sign-in is
// disabled when ClientID is empty.
type GoogleConfig struct {
	ClientID     string        `env:"GOOGLE_OAUTH_CLIENT_ID"`
	ClientSecret string        `env:"GOOGLE_OAUTH_CLIENT_SECRET"`
	RedirectURL  string        `env:"GOOGLE_OAUTH_REDIRECT_URL" envDefault:"http://localhost:8080/account/google/callback"`
	Scopes       []string      `env:"GOOGLE_OAUTH_SCOPES" envSeparator:"," envDefault:"openid,email,profile"`
	StateTTL     time.Duration `env:"GOOGLE_OAUTH_STATE_TTL" envDefault:"10m"`
}

// Enabled reports whether the client is configured.
func (c GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Profile is the normalized account returned by a provider.
type Profile struct {
	ProviderUserID string
	Email          string
	EmailVerified  bool
	Name           string
	AvatarURL      string
}

// Provider exchanges authorization codes for profiles.
type Provider interface {
	ID() string
	AuthURL(state string) string
	ResolveProfile(ctx context.Context, code string) (Profile, error)
}

// GoogleProvider implements Provider with Google's OAuth 2.0 endpoints.
type GoogleProvider struct {
	conf        *oauth2.Config
	httpClient  *http.Client
	userInfoURL string
}

// GoogleOption configures a GoogleProvider.
type GoogleOption func(*GoogleProvider)

// WithGoogleEndpoint overrides the OAuth and userinfo endpoints. Used in tests.
func WithGoogleEndpoint(endpoint oauth2.Endpoint, userInfoURL string) GoogleOption {
	return func(p *GoogleProvider) {
		p.conf.Endpoint = endpoint
		p.userInfoURL = userInfoURL
	}
}

// WithGoogleHTTPClient sets the client used for the token exchange and the
// userinfo request.
func WithGoogleHTTPClient(c *http.Client) GoogleOption {
	return func(p *GoogleProvider) {
		if c != nil {
			p.httpClient = c
		}
	}
}

// NewGoogleProvider creates a GoogleProvider.
func NewGoogleProvider(cfg GoogleConfig, opts ...GoogleOption) *GoogleProvider {
	p := &GoogleProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     google.Endpoint,
		},
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		userInfoURL: googleUserInfoURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GoogleProvider) ID() string { return ProviderGoogle }

// AuthURL builds the consent screen URL for state.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// ResolveProfile exchanges code and fetches the userinfo document.
func (p *GoogleProvider) ResolveProfile(ctx context.Context, code string) (Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return Profile{}, ErrInvalidCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch google user: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("fetch google user: status %d", resp.StatusCode)
	}

	var u struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return Profile{}, fmt.Errorf("decode google user: %w", err)
	}
	if u.Email == "" {
		return Profile{}, ErrNoPrimaryEmail
	}

	return Profile{
		ProviderUserID: u.ID,
		Email:          u.Email,
		EmailVerified:  u.VerifiedEmail,
		Name:           u.Name,
		AvatarURL:      u.Picture,
	}, nil
}

var _ Provider = (*GoogleProvider)(nil)
