package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/pkg/pg"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
)

// Users stores accounts in Postgres and implements auth.Storage.
type Users struct {
	db DB
}

// NewUsers creates a Users repository.
func NewUsers(db DB) *Users {
	return &Users{db: db}
}

var _ auth.Storage = (*Users)(nil)

const userColumns = `id, email, name, avatar_url, created_at`

func (r *Users) CreateUser(ctx context.Context, u *auth.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, name, avatar_url, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.Name, u.AvatarURL, u.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return auth.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Users) GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *Users) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *Users) GetUserByOAuth(ctx context.Context, provider, providerUserID string) (*auth.User, error) {
	return r.getOne(ctx, `SELECT u.id, u.email, u.name, u.avatar_url, u.created_at
		FROM users u JOIN oauth_links l ON l.user_id = u.id
		WHERE l.provider = $1 AND l.provider_user_id = $2`, provider, providerUserID)
}

func (r *Users) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *Users) StorePasswordHash(ctx context.Context, userID uuid.UUID, hash []byte) error {
	_, err := r.db.Exec(ctx, `INSERT INTO user_passwords (user_id, hash) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET hash = EXCLUDED.hash, updated_at = now()`,
		userID, string(hash),
	)
	if err != nil {
		return fmt.Errorf("store password hash: %w", err)
	}
	return nil
}

func (r *Users) GetPasswordHash(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT hash FROM user_passwords WHERE user_id = $1`, userID).Scan(&hash)
	if pg.IsNotFoundError(err) {
		return nil, auth.ErrNoPassword
	}
	if err != nil {
		return nil, fmt.Errorf("get password hash: %w", err)
	}
	return []byte(hash), nil
}

func (r *Users) StoreOAuthLink(ctx context.Context, provider, providerUserID string, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `INSERT INTO oauth_links (provider, provider_user_id, user_id) VALUES ($1, $2, $3)
		ON CONFLICT (provider, provider_user_id) DO NOTHING`,
		provider, providerUserID, userID,
	)
	if err != nil {
		return fmt.Errorf("store oauth link: %w", err)
	}
	return nil
}

func (r *Users) getOne(ctx context.Context, query string, args ...any) (*auth.User, error) {
	var u auth.User
	err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, errors.Join(ErrNotFound, auth.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
