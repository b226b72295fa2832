package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TestDataStore persists preview records, scoped to the owner.
type TestDataStore interface {
	Create(ctx context.Context, td *TestData) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (*TestData, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]TestData, error)
	Update(ctx context.Context, td *TestData) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TestDataConfigs is the Postgres TestDataStore.
type TestDataConfigs struct {
	db  DB
	now func() time.Time
}

// NewTestDataConfigs creates a TestDataConfigs repository.
func NewTestDataConfigs(db DB) *TestDataConfigs {
	return &TestDataConfigs{db: db, now: time.Now}
}

var _ TestDataStore = (*TestDataConfigs)(nil)

const testDataColumns = `id, owner_id, name, record, created_at, updated_at`

func (r *TestDataConfigs) Create(ctx context.Context, td *TestData) error {
	if td.ID == uuid.Nil {
		td.ID = uuid.New()
	}
	now := r.now().UTC()
	td.CreatedAt, td.UpdatedAt = now, now
	_, err := r.db.Exec(ctx, `INSERT INTO test_data_configs (`+testDataColumns+`) VALUES ($1, $2, $3, $4, $5, $5)`,
		td.ID, td.OwnerID, td.Name, td.Record, now,
	)
	if err != nil {
		return fmt.Errorf("insert test data: %w", mapError(err))
	}
	return nil
}

func (r *TestDataConfigs) Get(ctx context.Context, ownerID, id uuid.UUID) (*TestData, error) {
	row := r.db.QueryRow(ctx, `SELECT `+testDataColumns+` FROM test_data_configs WHERE owner_id = $1 AND id = $2`, ownerID, id)
	td, err := scanTestData(row)
	if err != nil {
		return nil, mapError(err)
	}
	return td, nil
}

func (r *TestDataConfigs) List(ctx context.Context, ownerID uuid.UUID) ([]TestData, error) {
	rows, err := r.db.Query(ctx, `SELECT `+testDataColumns+` FROM test_data_configs WHERE owner_id = $1 ORDER BY name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list test data: %w", err)
	}
	defer rows.Close()

	var out []TestData
	for rows.Next() {
		td, err := scanTestData(rows)
		if err != nil {
			return nil, fmt.Errorf("scan test data: %w", err)
		}
		out = append(out, *td)
	}
	return out, rows.Err()
}

func (r *TestDataConfigs) Update(ctx context.Context, td *TestData) error {
	td.UpdatedAt = r.now().UTC()
	tag, err := r.db.Exec(ctx, `UPDATE test_data_configs SET name = $3, record = $4, updated_at = $5
		WHERE owner_id = $1 AND id = $2`,
		td.OwnerID, td.ID, td.Name, td.Record, td.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update test data: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TestDataConfigs) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM test_data_configs WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete test data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTestData(row pgx.Row) (*TestData, error) {
	var td TestData
	if err := row.Scan(&td.ID, &td.OwnerID, &td.Name, &td.Record, &td.CreatedAt, &td.UpdatedAt); err != nil {
		return nil, err
	}
	return &td, nil
}
