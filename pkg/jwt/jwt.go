package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt"
)

// MinKeyLength is the shortest accepted HMAC secret.
const MinKeyLength = 32

// DefaultTTL is the lifetime of issued session tokens.
const DefaultTTL = 7 * 24 * time.Hour

// Claims are the claims of a session token. Subject holds the user id.
type Claims struct {
	gojwt.StandardClaims
	Email string `json:"email,omitempty"`
}

// Service issues and verifies HS256 session tokens.
type Service struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIssuer sets the iss claim written and required on parse.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// WithTTL sets the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides time.Now. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Service signing with secret.
func New(secret string, opts ...Option) (*Service, error) {
	if len(secret) < MinKeyLength {
		return nil, ErrSigningKeyTooShort
	}
	s := &Service{
		key: []byte(secret),
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL returns the lifetime of issued tokens.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the subject and returns it with its expiry.
func (s *Service) Issue(subject, email string) (string, time.Time, error) {
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, ErrInvalidClaims
	}
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		StandardClaims: gojwt.StandardClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			ExpiresAt: exp.Unix(),
		},
		Email: email,
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign token: %w", err)
	}
	return token, exp, nil
}

// Parse verifies the signature and the time claims of token.
// It returns ErrExpiredToken for expired tokens and ErrInvalidToken otherwise.
func (s *Service) Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parser := &gojwt.Parser{
		ValidMethods:         []string{gojwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	_, err := parser.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.key, nil
	})
	if err != nil {
		var ve *gojwt.ValidationError
		if errors.As(err, &ve) && ve.Inner != nil {
			return nil, errors.Join(ErrInvalidToken, ve.Inner)
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}

	now := s.now().Unix()
	switch {
	case !claims.VerifyExpiresAt(now, true):
		return nil, ErrExpiredToken
	case !claims.VerifyNotBefore(now, false):
		return nil, ErrInvalidToken
	case s.issuer != "" && !claims.VerifyIssuer(s.issuer, true):
		return nil, ErrInvalidToken
	case claims.Subject == "":
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
