// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/migrations"
)

// DB wraps a connection pool with its dialect, a placeholder-aware query
// builder and the dialect's error classificator.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(dialect.placeholders()),
		errorClassificator: dialect.classifier(),
		logger:             log,
	}
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn in a transaction. A transaction that fails with a retryable
// error (serialization failure, deadlock, busy database) is run once more.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	err := db.runTx(ctx, fn)
	if err != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Str("func", "*DB.withTx").Msg("retrying transaction after retryable error")
		err = db.runTx(ctx, fn)
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// writeError translates constraint violations of an INSERT or UPDATE into
// store sentinels. entity names the record in the resulting message.
func (db *DB) writeError(err error, entity string) error {
	switch db.errorClassificator.Constraint(err) {
	case UniqueConstraint:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, entity)
	case ForeignKeyConstraint:
		return fmt.Errorf("%w: %s", ErrReferenceViolation, entity)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
