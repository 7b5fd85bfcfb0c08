// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation could succeed if attempted again.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// ErrorClassificator inspects driver errors of one dialect.
type ErrorClassificator interface {
	// Classify reports whether err is transient.
	Classify(err error) ErrorClassification
	// Translate maps constraint violations to the package sentinels and
	// returns nil for anything else.
	Translate(err error) error
}

// DB is the shared connection pool together with the query builder and error
// classifier of its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.DSN and pings it.
//
//	postgres://, postgresql://, host=...  -> PostgreSQL (pgx)
//	sqlite://path, file:path, :memory:    -> SQLite (go-sqlite3)
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	var db *DB
	switch detectDialect(dsn) {
	case DialectPostgres:
		db, err = newConnectPostgres(ctx, dsn, cfg.MaxOpenConns, log)
	case DialectSQLite:
		db, err = newConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres:// or sqlite://", ErrUnsupportedDSN)
	}
	if err != nil {
		return nil, err
	}

	return db, nil
}

// newDB wraps an open connection pool.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

func detectDialect(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"),
		strings.HasPrefix(lower, "host="):
		return DialectPostgres
	case strings.HasPrefix(lower, "sqlite://"),
		strings.HasPrefix(lower, "file:"),
		lower == ":memory:":
		return DialectSQLite
	default:
		return ""
	}
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// wrapError logs err and converts it into a package sentinel where one
// applies. op names the failed repository method.
func (db *DB) wrapError(ctx context.Context, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if mapped := db.errorClassificator.Translate(err); mapped != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", op).Msg("constraint violation")
		return fmt.Errorf("%s: %w", op, mapped)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", op).
		Str("dialect", string(db.dialect)).
		Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
		Msg("database error")

	return fmt.Errorf("%s: %w: %w", op, ErrExecutingQuery, err)
}
