package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/sanitizer"
)

const stateCookiePrefix = "oauth_state_"

// OAuthService runs the authorization code flow for one provider. The state
// token lives in a signed cookie for the duration of the round trip.
type OAuthService struct {
	provider Provider
	storage  Storage
	cookies  *cookie.Manager
	stateTTL time.Duration
	log      *slog.Logger
	now      func() time.Time
}

// NewOAuthService creates an OAuthService.
func NewOAuthService(provider Provider, storage Storage, cookies *cookie.Manager, stateTTL time.Duration, log *slog.Logger) *OAuthService {
	if stateTTL <= 0 {
		stateTTL = 10 * time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &OAuthService{
		provider: provider,
		storage:  storage,
		cookies:  cookies,
		stateTTL: stateTTL,
		log:      log,
		now:      time.Now,
	}
}

// Begin stores a fresh state in a cookie and returns the provider URL.
func (s *OAuthService) Begin(w http.ResponseWriter) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(b)
	s.cookies.SetSigned(w, s.stateCookie(), state, cookie.WithTTL(s.stateTTL))
	return s.provider.AuthURL(state), nil
}

// Complete validates the returned state, resolves the profile and returns the
// linked user, linking or creating one on first sign-in.
func (s *OAuthService) Complete(ctx context.Context, w http.ResponseWriter, r *http.Request) (*User, error) {
	expected, err := s.cookies.GetSigned(r, s.stateCookie())
	s.cookies.Delete(w, s.stateCookie())
	if err != nil {
		return nil, ErrInvalidState
	}
	state := r.URL.Query().Get("state")
	if state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expected)) != 1 {
		return nil, ErrInvalidState
	}
	if e := r.URL.Query().Get("error"); e != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCode, e)
	}

	profile, err := s.provider.ResolveProfile(ctx, r.URL.Query().Get("code"))
	if err != nil {
		return nil, err
	}
	return s.Link(ctx, profile)
}

// Link returns the user for profile. Existing links win; otherwise a verified
// email is matched against registered users, and a new user is created when
// nothing matches.
func (s *OAuthService) Link(ctx context.Context, p Profile) (*User, error) {
	provider := s.provider.ID()

	user, err := s.storage.GetUserByOAuth(ctx, provider, p.ProviderUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("lookup oauth link: %w", err)
	}

	email := sanitizer.NormalizeEmail(p.Email)
	if email == "" {
		return nil, ErrNoPrimaryEmail
	}
	if !p.EmailVerified {
		return nil, ErrUnverifiedEmail
	}

	user, err = s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, ErrUserNotFound):
		user = &User{
			ID:        uuid.New(),
			Email:     email,
			Name:      sanitizer.SingleLine(p.Name),
			AvatarURL: p.AvatarURL,
			CreatedAt: s.now().UTC(),
		}
		if err := s.storage.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.log.InfoContext(ctx, "user registered",
			logger.Component("auth"),
			logger.UserID(user.ID),
			logger.Event("register"),
			slog.String("provider", provider),
		)
	default:
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.storage.StoreOAuthLink(ctx, provider, p.ProviderUserID, user.ID); err != nil {
		return nil, fmt.Errorf("store oauth link: %w", err)
	}
	return user, nil
}

func (s *OAuthService) stateCookie() string {
	return stateCookiePrefix + s.provider.ID()
}
