// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is wrapped by every entity-specific "not found" error.
	ErrNotFound = errors.New("not found")

	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrCourseNotFound   = fmt.Errorf("course %w", ErrNotFound)
	ErrChapterNotFound  = fmt.Errorf("chapter %w", ErrNotFound)
	ErrArticleNotFound  = fmt.Errorf("article %w", ErrNotFound)
	ErrSettingNotFound  = fmt.Errorf("setting %w", ErrNotFound)

	// ErrAlreadyExists is returned when a write violates a unique constraint,
	// e.g. a second user with the same email.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrReferenceViolation is returned when a write references a parent row
	// that does not exist.
	ErrReferenceViolation = errors.New("referenced record does not exist")

	// ErrHasDependents is matched by every [*DependentsError].
	ErrHasDependents = errors.New("record has dependent records")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// DependentsError is returned when a parent row cannot be deleted because
// child rows still reference it. Count is zero when the block was detected
// by the foreign key constraint rather than by counting.
type DependentsError struct {
	Count int64
}

func (e *DependentsError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("cannot delete: %d dependent records exist", e.Count)
	}
	return "cannot delete: dependent records exist"
}

func (e *DependentsError) Is(target error) bool {
	return target == ErrHasDependents
}
