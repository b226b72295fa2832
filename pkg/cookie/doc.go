// Package cookie writes and reads HTTP cookies.
//
// Manager supports plain cookies, HMAC-SHA256 signed cookies, AES-256-GCM
// encrypted cookies and one-time flash values. Multiple secrets enable key
// rotation: the first secret is used for writing and all of them for reading.
//
//	man, err := cookie.New([]string{secret})
//	man.SetSigned(w, "oauth_state", state, cookie.WithTTL(10*time.Minute))
//	state, err := man.GetSigned(r, "oauth_state")
//
// Defaults are Path "/", HttpOnly and SameSite=Lax.
package cookie
