// Package jwt issues and verifies HS256 session tokens on top of
// github.com/golang-jwt/jwt.
//
//	svc, err := jwt.New(cfg.SessionSecret, jwt.WithIssuer("signaturecraft"))
//	token, expires, err := svc.Issue(user.ID.String(), user.Email)
//	claims, err := svc.Parse(token)
//
// Only HMAC-SHA256 is accepted on parse. Expired tokens return
// ErrExpiredToken, every other failure ErrInvalidToken.
//
// Middleware extracts the token with a TokenExtractorFunc (bearer header,
// cookie or a chain of both) and stores the claims in the request context
// for ClaimsFromContext.
package jwt
