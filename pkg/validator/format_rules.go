package validator

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ValidEmail accepts a bare address with a dotted domain.
// Display-name forms such as "Ann <ann@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return rule(field, "must be a valid email address", func() bool {
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value || addr.Name != "" {
			return false
		}
		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}
		if !strings.Contains(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	})
}

// ValidURL accepts absolute http and https URLs.
func ValidURL(field, value string) Rule {
	return rule(field, "must be a valid URL", func() bool {
		u, err := url.Parse(value)
		if err != nil || u.Host == "" {
			return false
		}
		return u.Scheme == "http" || u.Scheme == "https"
	})
}

// ValidUUID accepts any RFC 4122 UUID except the nil UUID.
func ValidUUID(field, value string) Rule {
	return rule(field, "must be a valid UUID", func() bool {
		id, err := uuid.Parse(value)
		return err == nil && id != uuid.Nil
	})
}
