// Package database
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annsokol/foodbook/internal/sql"
)

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Database struct {
	Querier

	Pool Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// WithTx binds the query layer to an open transaction. When the underlying
// Querier is not the real query layer (mocks in tests), it is returned as-is.
func (d *Database) WithTx(tx pgx.Tx) Querier {
	if q, ok := d.Querier.(*Queries); ok {
		return q.WithTx(tx)
	}
	return d.Querier
}

// EnsureSchema ensures the database schema is applied to the
// Postgres database. The schema is applied to the database
// if the schema is not detected.
func (d *Database) EnsureSchema(ctx context.Context) error {
	exists, err := d.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	q, ok := d.Querier.(*Queries)
	if !ok {
		return errors.New("cannot apply schema without a live connection")
	}
	if _, err := q.db.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Concurrent writers racing on a relation pair surface here.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsCheckViolation reports whether err is a Postgres check-constraint
// violation (out-of-bounds cooking time or ingredient amount).
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}
