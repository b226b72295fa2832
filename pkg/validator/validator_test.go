package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.Apply())
	require.NoError(t, validator.Apply(validator.RequiredString("name", "Ann")))

	err := validator.Apply(
		validator.RequiredString("name", "  "),
		validator.ValidEmail("email", "nope"),
		validator.MaxLenString("title", "ok", 10),
	)
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve, 2)
	assert.True(t, ve.Has("name"))
	assert.True(t, ve.Has("email"))
	assert.False(t, ve.Has("title"))
	assert.Equal(t, []string{"field is required"}, ve.Get("name"))
	assert.Equal(t, "validation failed: name: field is required; email: must be a valid email address", err.Error())

	assert.True(t, validator.IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, validator.IsValidationError(errors.New("other")))
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		ok   bool
	}{
		{"email ok", validator.ValidEmail("e", "sarah@acme.io"), true},
		{"email subdomain", validator.ValidEmail("e", "a.b@mail.acme.co.uk"), true},
		{"email no domain dot", validator.ValidEmail("e", "a@localhost"), false},
		{"email display name", validator.ValidEmail("e", "Ann <ann@acme.io>"), false},
		{"email empty label", validator.ValidEmail("e", "a@acme..io"), false},
		{"email empty", validator.ValidEmail("e", ""), false},
		{"min len runes", validator.MinLenString("f", "äöü", 3), true},
		{"max len runes", validator.MaxLenString("f", "äöü", 3), true},
		{"max len exceeded", validator.MaxLenString("f", "abcd", 3), false},
		{"in list", validator.InListString("t", "modern", []string{"classic", "modern"}), true},
		{"not in list", validator.InListString("t", "fancy", []string{"classic", "modern"}), false},
		{"regex", validator.MatchesRegex("c", "#1a365d", `^#[0-9a-fA-F]{6}$`, "hex color"), true},
		{"regex blank", validator.MatchesRegex("c", "", `.*`, "anything"), false},
		{"prefix", validator.StartsWithPattern("l", "data:image/png;base64,AAA", "data:image/"), true},
		{"prefix missing", validator.StartsWithPattern("l", "http://x/logo.png", "data:image/"), false},
		{"url", validator.ValidURL("u", "https://acme.io/x"), true},
		{"url scheme", validator.ValidURL("u", "ftp://acme.io"), false},
		{"url relative", validator.ValidURL("u", "/x"), false},
		{"uuid", validator.ValidUUID("id", "0191f1a4-7b5e-7c3a-9a8e-1f2d3c4b5a69"), true},
		{"uuid nil", validator.ValidUUID("id", "00000000-0000-0000-0000-000000000000"), false},
		{"uuid garbage", validator.ValidUUID("id", "123"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ok, tt.rule.Check())
		})
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultPasswordStrength()

	require.NoError(t, validator.Apply(validator.StrongPassword("password", "Signat0reCraft", cfg)...))

	err := validator.Apply(validator.StrongPassword("password", "short", cfg)...)
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{
		"must be at least 8 characters long",
		"must contain an uppercase letter",
		"must contain a digit",
	}, ve.Get("password"))

	err = validator.Apply(validator.StrongPassword("password", "Password1", cfg)...)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"is too common"}, ve.Get("password"))

	strict := cfg
	strict.RequireSpecial = true
	err = validator.Apply(validator.StrongPassword("password", "Signat0reCraft", strict)...)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"must contain a special character"}, ve.Get("password"))
}

func TestWhen(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.When(false, validator.RequiredString("x", "")))
	assert.Len(t, validator.When(true, validator.RequiredString("x", "")), 1)
}
