// Package auth implements sign-up and sign-in for SignatureCraft accounts.
//
// PasswordService registers users with a bcrypt password hash and checks
// credentials. OAuthService runs the Google authorization code flow, keeping
// the state in a signed cookie and linking the provider account to a user by
// verified email. Sessions issues an HS256 token into an HTTP-only cookie.
//
// RequireUser guards routes: the user id is available to handlers through
// UserIDFromContext.
package auth
