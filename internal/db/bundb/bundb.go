// Package bundb opens the Postgres connection pool behind every repository and
// classifies storage errors that services map to domain failures.
package bundb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// SQLSTATE codes the services care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Options tune the connection pool. Zero values keep database/sql defaults.
type Options struct {
	DSN          string
	MaxOpenConns int
}

// NewBunDB opens a pgdriver pool, checks it with a ping and wraps it in bun.
func NewBunDB(ctx context.Context, opts Options, logger *slog.Logger) (*bun.DB, error) {
	if opts.DSN == "" {
		return nil, errors.New("bundb: empty DSN")
	}
	if logger == nil {
		logger = slog.Default()
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(opts.DSN)))
	if opts.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(opts.MaxOpenConns)
		sqldb.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.InfoContext(ctx, "Connected to Postgres", slog.Int("max_open_conns", opts.MaxOpenConns))
	return BunDB(sqldb), nil
}

// BunDB wraps an existing pool. Integration tests use it with the pgx stdlib driver.
func BunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

// UniqueViolation reports whether err is a unique-constraint violation and, if
// the driver supplied it, the name of the violated constraint.
func UniqueViolation(err error) (constraint string, ok bool) {
	return violation(err, codeUniqueViolation)
}

// ForeignKeyViolation reports whether err is a foreign-key violation.
func ForeignKeyViolation(err error) (constraint string, ok bool) {
	return violation(err, codeForeignKeyViolation)
}

func violation(err error, code string) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		if pgErr.Field('C') == code {
			return pgErr.Field('n'), true
		}
		return "", false
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if pgxErr.Code == code {
			return pgxErr.ConstraintName, true
		}
	}
	return "", false
}
