package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lower-cases s.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// NormalizeWhitespace collapses runs of whitespace, including newlines, into one space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control and invalid UTF-8 characters. Tabs and newlines become spaces.
func StripControl(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate cuts s to at most max characters.
func Truncate(max int) func(string) string {
	return func(s string) string {
		if max <= 0 {
			return ""
		}
		if utf8.RuneCountInString(s) <= max {
			return s
		}
		return string([]rune(s)[:max])
	}
}

// SingleLine cleans free text typed into a one-line form field.
var SingleLine = Compose(StripControl, NormalizeWhitespace)
