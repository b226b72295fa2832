// Package repository stores users, signatures, profiles and test data.
//
// The Postgres implementations take a DB (a *pgxpool.Pool in production) and
// keep contact records in JSONB columns. Signature, profile and test data
// lookups are scoped to the owning user and return ErrNotFound for records of
// other users. Users implements auth.Storage.
//
// The Memory* types implement the same interfaces without a database.
package repository
