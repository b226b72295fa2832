package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrEmailTaken         = errors.New("auth: email is already registered")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrNoPassword         = errors.New("auth: account has no password")
	ErrInvalidState       = errors.New("auth: invalid oauth state")
	ErrInvalidCode        = errors.New("auth: invalid authorization code")
	ErrNoPrimaryEmail     = errors.New("auth: provider returned no email")
	ErrUnverifiedEmail    = errors.New("auth: provider email is not verified")
	ErrUnauthenticated    = errors.New("auth: no valid session")
)
