package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/signaturecraft/pkg/pg"
)

// SignatureStore persists signatures. Every lookup is scoped to the owner, so
// a signature of another user reads as ErrNotFound.
type SignatureStore interface {
	Create(ctx context.Context, sig *Signature) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Signature, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Signature, error)
	Update(ctx context.Context, sig *Signature) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	SetDefault(ctx context.Context, ownerID, id uuid.UUID) error
}

// Signatures is the Postgres SignatureStore.
type Signatures struct {
	db  DB
	now func() time.Time
}

// NewSignatures creates a Signatures repository.
func NewSignatures(db DB) *Signatures {
	return &Signatures{db: db, now: time.Now}
}

var _ SignatureStore = (*Signatures)(nil)

const signatureColumns = `id, owner_id, title, record, is_default, created_at, updated_at`

// Create inserts sig, assigning its id and timestamps. The first signature of
// an owner becomes the default one.
func (r *Signatures) Create(ctx context.Context, sig *Signature) error {
	if sig.ID == uuid.Nil {
		sig.ID = uuid.New()
	}
	now := r.now().UTC()
	sig.CreatedAt, sig.UpdatedAt = now, now

	err := r.db.QueryRow(ctx, `INSERT INTO signatures (id, owner_id, title, template_id, record, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOT EXISTS (SELECT 1 FROM signatures WHERE owner_id = $2), $6, $6)
		RETURNING is_default`,
		sig.ID, sig.OwnerID, sig.Title, sig.Record.TemplateID, sig.Record, now,
	).Scan(&sig.IsDefault)
	if err != nil {
		return fmt.Errorf("insert signature: %w", mapError(err))
	}
	return nil
}

func (r *Signatures) Get(ctx context.Context, ownerID, id uuid.UUID) (*Signature, error) {
	row := r.db.QueryRow(ctx, `SELECT `+signatureColumns+` FROM signatures WHERE owner_id = $1 AND id = $2`, ownerID, id)
	sig, err := scanSignature(row)
	if err != nil {
		return nil, mapError(err)
	}
	return sig, nil
}

// List returns the owner's signatures, the default first, then most recently
// updated.
func (r *Signatures) List(ctx context.Context, ownerID uuid.UUID) ([]Signature, error) {
	rows, err := r.db.Query(ctx, `SELECT `+signatureColumns+` FROM signatures
		WHERE owner_id = $1 ORDER BY is_default DESC, updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	var out []Signature
	for rows.Next() {
		sig, err := scanSignature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		out = append(out, *sig)
	}
	return out, rows.Err()
}

// Update replaces the title and record of sig.
func (r *Signatures) Update(ctx context.Context, sig *Signature) error {
	sig.UpdatedAt = r.now().UTC()
	tag, err := r.db.Exec(ctx, `UPDATE signatures SET title = $3, template_id = $4, record = $5, updated_at = $6
		WHERE owner_id = $1 AND id = $2`,
		sig.OwnerID, sig.ID, sig.Title, sig.Record.TemplateID, sig.Record, sig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update signature: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the signature. When it was the default, the most recently
// updated remaining signature of the owner takes over.
func (r *Signatures) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return pg.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var wasDefault bool
		err := tx.QueryRow(ctx, `DELETE FROM signatures WHERE owner_id = $1 AND id = $2 RETURNING is_default`,
			ownerID, id).Scan(&wasDefault)
		if err != nil {
			if pg.IsNotFoundError(err) {
				return ErrNotFound
			}
			return fmt.Errorf("delete signature: %w", err)
		}
		if !wasDefault {
			return nil
		}
		if _, err := tx.Exec(ctx, `UPDATE signatures SET is_default = TRUE WHERE id = (
			SELECT id FROM signatures WHERE owner_id = $1 ORDER BY updated_at DESC LIMIT 1)`, ownerID); err != nil {
			return fmt.Errorf("promote default: %w", err)
		}
		return nil
	})
}

// SetDefault makes id the only default signature of the owner.
func (r *Signatures) SetDefault(ctx context.Context, ownerID, id uuid.UUID) error {
	return pg.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE signatures SET is_default = FALSE WHERE owner_id = $1 AND is_default`, ownerID); err != nil {
			return fmt.Errorf("clear default: %w", err)
		}
		tag, err := tx.Exec(ctx, `UPDATE signatures SET is_default = TRUE WHERE owner_id = $1 AND id = $2`, ownerID, id)
		if err != nil {
			return fmt.Errorf("set default: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func scanSignature(row pgx.Row) (*Signature, error) {
	var s Signature
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Title, &s.Record, &s.IsDefault, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
