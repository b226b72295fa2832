// Package clientip resolves the address of the client behind proxies.
//
// GetIP checks CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For and
// X-Real-IP before RemoteAddr. Use Resolve with an explicit header list when
// the deployment sits behind a different proxy chain. Only deploy behind a
// proxy that overwrites these headers, since clients can set them freely.
package clientip
