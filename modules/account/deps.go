package account

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// Authenticator registers and signs in password users.
type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (*auth.User, error)
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
}

// SessionManager starts and ends browser sessions.
type SessionManager interface {
	Start(w http.ResponseWriter, user *auth.User) error
	End(w http.ResponseWriter)
}

// WelcomeMailer greets newly registered users.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, to, name string) error
}

// HomePath is where users land after signing in without a next parameter.
const HomePath = "/builder"
