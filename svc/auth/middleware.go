package auth

import (
	"net/http"
	"net/url"

	"github.com/dmitrymomot/signaturecraft/handler"
)

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/account/login"

// LoadUser stores the session user id in the request context when a valid
// session is present. It never rejects a request.
func LoadUser(s *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, err := s.UserID(r); err == nil {
				r = r.WithContext(WithUserID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests without a valid session. API requests receive
// a 401 JSON envelope, page requests a redirect to the login page.
func RequireUser(s *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := UserIDFromContext(r.Context())
			if !ok {
				var err error
				if id, err = s.UserID(r); err != nil {
					if handler.WantsJSON(r) {
						_ = handler.JSONError(handler.ErrUnauthorized).Render(w, r)
						return
					}
					target := LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
					_ = handler.Redirect(target).Render(w, r)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}
