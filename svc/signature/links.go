package signature

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWebsiteURL prefixes the address with https:// unless it already has an
// http:// or https:// scheme. It is idempotent and keeps empty input empty.
func NormalizeWebsiteURL(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	lower := strings.ToLower(website)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return website
	}
	return "https://" + website
}

// DisplayWebsite strips the scheme and a trailing slash for link text.
func DisplayWebsite(website string) string {
	website = strings.TrimSpace(website)
	lower := strings.ToLower(website)
	switch {
	case strings.HasPrefix(lower, "https://"):
		website = website[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		website = website[len("http://"):]
	}
	return strings.TrimSuffix(website, "/")
}

// MailtoURL builds a mailto: link for the address.
func MailtoURL(email string) string {
	return "mailto:" + strings.TrimSpace(email)
}

// TelURL builds a tel: link keeping only digits and a leading plus sign.
func TelURL(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Initials returns the upper-cased first letters of each word in name,
// truncated to two characters.
func Initials(name string) string {
	var letters []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		letters = append(letters, r[0])
		if len(letters) == 2 {
			break
		}
	}
	// A Caser keeps state, so one is created per call.
	out := []rune(cases.Upper(language.Und).String(string(letters)))
	if len(out) > 2 {
		out = out[:2]
	}
	return string(out)
}
