package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which sign-in methods the account router serves.
// Each one is optional and only mounted when provided.
type RouterOptions struct {
	Password    Mountable
	GoogleOAuth Mountable
}

// Router creates the account router. Mounted at /account it serves:
//
//	/account/login, /account/register, /account/logout   (Password)
//	/account/google/login, /account/google/callback       (GoogleOAuth)
//
// Example:
//
//	r.Mount("/account", account.Router(account.RouterOptions{
//	    Password:    account.NewPasswordHandler(passwords, sessions, mailer),
//	    GoogleOAuth: account.NewGoogleHandler(googleOAuth, sessions, log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.GoogleOAuth != nil {
		r.Mount("/google", opts.GoogleOAuth.Handle())
	}
	if opts.Password != nil {
		r.Mount("/", opts.Password.Handle())
	}

	return r
}
