package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// BearerTokenExtractor reads "Authorization: Bearer <token>".
func BearerTokenExtractor(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// CookieTokenExtractor reads the token from the named cookie.
func CookieTokenExtractor(name string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", ErrMissingToken
		}
		return c.Value, nil
	}
}

// ChainExtractors returns the first token found by extractors.
func ChainExtractors(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, ex := range extractors {
			if token, err := ex(r); err == nil {
				return token, nil
			}
		}
		return "", ErrMissingToken
	}
}

// Middleware verifies the extracted token and stores its claims in the request
// context. Requests without a valid token are passed through untouched, so
// authorization stays with the caller.
func Middleware(svc *Service, extractor TokenExtractorFunc) func(http.Handler) http.Handler {
	if extractor == nil {
		extractor = BearerTokenExtractor
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractor(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := svc.Parse(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
