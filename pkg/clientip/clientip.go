package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client address using DefaultHeaders.
func GetIP(r *http.Request) string {
	return Resolve(r, DefaultHeaders...)
}

// Resolve returns the first valid address found in headers, then RemoteAddr.
// Comma separated headers (X-Forwarded-For) yield their first valid entry.
// Returns an empty string when nothing parses.
func Resolve(r *http.Request, headers ...string) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize parses s and returns its canonical form. IPv4-mapped IPv6
// addresses are unmapped and zones are dropped.
func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
