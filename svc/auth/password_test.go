package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signaturecraft/pkg/validator"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

func newPasswordService(storage auth.Storage) *auth.PasswordService {
	return auth.NewPasswordService(storage, auth.WithBcryptCost(bcrypt.MinCost))
}

func TestPasswordService_Register(t *testing.T) {
	t.Parallel()

	t.Run("normalizes email and stores hash", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		svc := newPasswordService(storage)

		user, err := svc.Register(context.Background(), "  Jane   Doe ", " Jane@Example.COM ", "Secr3tPass")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "Jane Doe", user.Name)

		hash, err := storage.GetPasswordHash(context.Background(), user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("Secr3tPass")))
	})

	t.Run("rejects taken email", func(t *testing.T) {
		t.Parallel()
		svc := newPasswordService(newMemoryStorage())
		_, err := svc.Register(context.Background(), "A", "a@example.com", "Secr3tPass")
		require.NoError(t, err)
		_, err = svc.Register(context.Background(), "B", "A@example.com", "Secr3tPass")
		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	t.Run("validates input", func(t *testing.T) {
		t.Parallel()
		svc := newPasswordService(newMemoryStorage())
		_, err := svc.Register(context.Background(), "A", "not-an-email", "short")
		require.Error(t, err)

		var ve validator.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.True(t, ve.Has("email"))
		assert.True(t, ve.Has("password"))
	})

	t.Run("removes user when hash cannot be stored", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		storage.failStoreHash = errors.New("disk full")
		svc := newPasswordService(storage)

		_, err := svc.Register(context.Background(), "A", "a@example.com", "Secr3tPass")
		require.Error(t, err)
		assert.Zero(t, storage.count())
	})
}

func TestPasswordService_Authenticate(t *testing.T) {
	t.Parallel()

	storage := newMemoryStorage()
	svc := newPasswordService(storage)
	registered, err := svc.Register(context.Background(), "Jane", "jane@example.com", "Secr3tPass")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "JANE@example.com", "Secr3tPass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "jane@example.com", "Wrong1234"},
		{"unknown email", "john@example.com", "Secr3tPass"},
		{"empty password", "jane@example.com", ""},
		{"empty email", "", "Secr3tPass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}
