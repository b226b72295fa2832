package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProfileStore persists one profile per user.
type ProfileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

// Profiles is the Postgres ProfileStore.
type Profiles struct {
	db  DB
	now func() time.Time
}

// NewProfiles creates a Profiles repository.
func NewProfiles(db DB) *Profiles {
	return &Profiles{db: db, now: time.Now}
}

var _ ProfileStore = (*Profiles)(nil)

func (r *Profiles) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p := Profile{UserID: userID}
	err := r.db.QueryRow(ctx, `SELECT record, updated_at FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.Record, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *Profiles) Upsert(ctx context.Context, p *Profile) error {
	p.UpdatedAt = r.now().UTC()
	_, err := r.db.Exec(ctx, `INSERT INTO profiles (user_id, record, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Record, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", mapError(err))
	}
	return nil
}
