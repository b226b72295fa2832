package auth

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/pkg/cookie"
	"github.com/dmitrymomot/signaturecraft/pkg/jwt"
)

// DefaultSessionCookie is the name of the session cookie.
const DefaultSessionCookie = "sc_session"

// Sessions issues session tokens into an HTTP-only cookie and reads them back
// from the cookie or a bearer header.
type Sessions struct {
	tokens    *jwt.Service
	cookies   *cookie.Manager
	name      string
	extractor jwt.TokenExtractorFunc
}

// NewSessions creates a Sessions store using the named cookie.
func NewSessions(tokens *jwt.Service, cookies *cookie.Manager, name string) *Sessions {
	if name == "" {
		name = DefaultSessionCookie
	}
	return &Sessions{
		tokens:    tokens,
		cookies:   cookies,
		name:      name,
		extractor: jwt.ChainExtractors(jwt.CookieTokenExtractor(name), jwt.BearerTokenExtractor),
	}
}

// Start writes a session cookie for user.
func (s *Sessions) Start(w http.ResponseWriter, user *User) error {
	token, _, err := s.tokens.Issue(user.ID.String(), user.Email)
	if err != nil {
		return err
	}
	s.cookies.Set(w, s.name, token, cookie.WithTTL(s.tokens.TTL()), cookie.WithHTTPOnly(true))
	return nil
}

// End clears the session cookie.
func (s *Sessions) End(w http.ResponseWriter) {
	s.cookies.Delete(w, s.name)
}

// UserID returns the id of the authenticated user, or ErrUnauthenticated.
func (s *Sessions) UserID(r *http.Request) (uuid.UUID, error) {
	token, err := s.extractor(r)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}
