package sanitizer

import (
	"strings"
)

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps digits, a leading plus and single spaces between groups.
// Punctuation such as parentheses, dots and dashes become spaces.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return NormalizeWhitespace(b.String())
}

// NormalizeHexColor trims a colour and adds the leading "#" when it is missing.
// Values that are not hex digits are returned trimmed but otherwise unchanged.
func NormalizeHexColor(color string) string {
	color = strings.TrimSpace(color)
	if color == "" || strings.HasPrefix(color, "#") {
		return strings.ToLower(color)
	}
	for _, r := range color {
		if !isHex(r) {
			return color
		}
	}
	if len(color) == 3 || len(color) == 6 {
		return "#" + strings.ToLower(color)
	}
	return color
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// CleanStringMap trims keys and values and drops entries with an empty key or value.
// keyTransform is applied to every trimmed key when not nil.
func CleanStringMap(m map[string]string, keyTransform func(string) string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if keyTransform != nil {
			k = keyTransform(k)
		}
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
