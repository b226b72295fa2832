package validator

import (
	"strings"
	"unicode"
)

// commonPasswords is a short deny list of the most frequently leaked passwords.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "123456789": {},
	"12345678": {}, "qwerty123": {}, "iloveyou": {}, "admin123": {},
	"welcome1": {}, "letmein1": {}, "sunshine1": {}, "football1": {},
}

// PasswordStrength configures StrongPassword.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireDigit   bool
	RequireSpecial bool
}

// DefaultPasswordStrength requires 8 characters with letters of both cases and a digit.
func DefaultPasswordStrength() PasswordStrength {
	return PasswordStrength{
		MinLength:    8,
		RequireUpper: true,
		RequireLower: true,
		RequireDigit: true,
	}
}

// StrongPassword returns one rule per unmet requirement so users see every problem at once.
func StrongPassword(field, value string, cfg PasswordStrength) []Rule {
	var upper, lower, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	rules := []Rule{
		MinLenString(field, value, cfg.MinLength),
		MaxLenString(field, value, 72),
		rule(field, "is too common", func() bool {
			_, found := commonPasswords[strings.ToLower(value)]
			return !found
		}),
	}
	rules = append(rules, When(cfg.RequireUpper, rule(field, "must contain an uppercase letter", func() bool { return upper }))...)
	rules = append(rules, When(cfg.RequireLower, rule(field, "must contain a lowercase letter", func() bool { return lower }))...)
	rules = append(rules, When(cfg.RequireDigit, rule(field, "must contain a digit", func() bool { return digit }))...)
	rules = append(rules, When(cfg.RequireSpecial, rule(field, "must contain a special character", func() bool { return special }))...)
	return rules
}
