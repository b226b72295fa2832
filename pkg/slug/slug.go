package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFilename is used by Filename when the name has no usable characters.
const DefaultFilename = "signature"

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
}

// MaxLength truncates the slug to n bytes on a word boundary when possible.
// Zero disables the limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces the default "-".
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// ligatures have no decomposition and are spelled out instead.
var ligatures = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
)

// Make returns the lower-case ASCII slug of s.
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	ascii, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		ligatures.Replace(s),
	)
	if err != nil {
		ascii = s
	}

	var b strings.Builder
	b.Grow(len(ascii))
	pending := false
	for _, r := range strings.ToLower(ascii) {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteString(cfg.separator)
			pending = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if cfg.maxLength > 0 && len(out) > cfg.maxLength {
		out = out[:cfg.maxLength]
		if i := strings.LastIndex(out, cfg.separator); i > 0 {
			out = out[:i]
		}
		out = strings.TrimSuffix(out, cfg.separator)
	}
	return out
}

// Filename returns the slug of name with ext appended. An empty slug falls
// back to fallback, or DefaultFilename when fallback is empty too.
func Filename(name, ext, fallback string) string {
	base := Make(name, MaxLength(64))
	if base == "" {
		base = Make(fallback, MaxLength(64))
	}
	if base == "" {
		base = DefaultFilename
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return base + strings.ToLower(ext)
}
