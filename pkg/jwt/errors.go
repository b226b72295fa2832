package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrMissingToken            = errors.New("jwt: missing token")
	ErrSigningKeyTooShort      = errors.New("jwt: signing key must be at least 32 bytes")
	ErrInvalidClaims           = errors.New("jwt: invalid claims")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
