package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when value is blank after trimming.
func RequiredString(field, value string) Rule {
	return rule(field, "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLenString counts characters, not bytes.
func MinLenString(field, value string, min int) Rule {
	return rule(field, fmt.Sprintf("must be at least %d characters long", min), func() bool {
		return utf8.RuneCountInString(value) >= min
	})
}

// MaxLenString counts characters, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return rule(field, fmt.Sprintf("must be at most %d characters long", max), func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

// InListString fails unless value is one of allowed.
func InListString(field, value string, allowed []string) Rule {
	return rule(field, "must be one of: "+strings.Join(allowed, ", "), func() bool {
		return slices.Contains(allowed, value)
	})
}

// MatchesRegex fails when value is blank or does not match pattern.
// description names the expected format in the error message.
func MatchesRegex(field, value, pattern, description string) Rule {
	re := regexp.MustCompile(pattern)
	return rule(field, fmt.Sprintf("must match %s pattern", description), func() bool {
		return strings.TrimSpace(value) != "" && re.MatchString(value)
	})
}

// StartsWithPattern fails unless value begins with the regular expression pattern.
func StartsWithPattern(field, value, pattern string) Rule {
	re := regexp.MustCompile("^(?:" + pattern + ")")
	return rule(field, "must start with pattern: "+pattern, func() bool {
		return re.MatchString(value)
	})
}
