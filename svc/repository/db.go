package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/signaturecraft/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by the Postgres repositories.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// mapError translates driver errors into package errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case pg.IsNotFoundError(err):
		return ErrNotFound
	case pg.IsDuplicateKeyError(err):
		return errors.Join(ErrConflict, err)
	}
	return err
}
