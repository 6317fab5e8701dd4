// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/logger"
)

// dependency describes a parent table whose rows may not be deleted while
// rows of the child table reference them.
type dependency struct {
	parent     string
	child      string
	foreignKey string
	notFound   error
}

var (
	categoryCourses = dependency{parent: categoriesTable, child: coursesTable, foreignKey: "category_id", notFound: ErrCategoryNotFound}
	courseChapters  = dependency{parent: coursesTable, child: chaptersTable, foreignKey: "course_id", notFound: ErrCourseNotFound}
)

// deleteGuarded deletes the parent row id unless child rows reference it.
//
// Lock, count and delete run in one transaction. On PostgreSQL the parent
// row is locked FOR UPDATE, which blocks concurrent child inserts (they take
// a key-share lock on the parent) until this transaction ends. A foreign key
// violation raised by the DELETE itself is reported the same way as a
// non-zero count.
func (db *DB) deleteGuarded(ctx context.Context, dep dependency, id int64) error {
	log := logger.FromContext(ctx)

	err := db.withTx(ctx, func(tx *sql.Tx) error {
		lockQuery, lockArgs, err := db.dialect.lockForUpdate(
			db.builder.Select("id").From(dep.parent).Where(sq.Eq{"id": id}),
		).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var lockedID int64
		if err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&lockedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return dep.notFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		countQuery, countArgs, err := db.builder.Select("COUNT(*)").
			From(dep.child).
			Where(sq.Eq{dep.foreignKey: id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var dependents int64
		if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&dependents); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if dependents > 0 {
			return &DependentsError{Count: dependents}
		}

		if _, err = exec(ctx, tx, db.builder.Delete(dep.parent).Where(sq.Eq{"id": id})); err != nil {
			if db.errorClassificator.Constraint(err) == ForeignKeyConstraint {
				return &DependentsError{}
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*DB.deleteGuarded").
			Str("table", dep.parent).
			Int64("id", id).
			Msg("guarded delete failed")
		return err
	}

	log.Info().
		Str("func", "*DB.deleteGuarded").
		Str("table", dep.parent).
		Int64("id", id).
		Msg("deleted record without dependents")
	return nil
}
