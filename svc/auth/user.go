package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sign-in methods recorded on the user.
const (
	MethodPassword = "password"
	MethodGoogle   = "google"
)

// User is a registered account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Storage persists users, password hashes and provider links.
// Lookups return ErrUserNotFound when nothing matches.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	StorePasswordHash(ctx context.Context, userID uuid.UUID, hash []byte) error
	GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error)
	StoreOAuthLink(ctx context.Context, provider, providerUserID string, userID uuid.UUID) error
	GetUserByOAuth(ctx context.Context, provider, providerUserID string) (*User, error)
}
