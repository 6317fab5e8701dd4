// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockCategory    = "SELECT id FROM categories WHERE id = $1 FOR UPDATE"
	countCourses    = "SELECT COUNT(*) FROM courses WHERE category_id = $1"
	deleteCategory  = "DELETE FROM categories WHERE id = $1"
	lockCourse      = "SELECT id FROM courses WHERE id = $1 FOR UPDATE"
	countChapters   = "SELECT COUNT(*) FROM chapters WHERE course_id = $1"
	deleteCourseSQL = "DELETE FROM courses WHERE id = $1"
)

func TestDeleteGuarded_NoDependents(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCategoryRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(sqlText(countCourses)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(sqlText(deleteCategory)).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCategory(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_HasDependents(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCourseRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCourse)).WithArgs(int64(3)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(sqlText(countChapters)).WithArgs(int64(3)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.DeleteCourse(context.Background(), 3)

	require.ErrorIs(t, err, ErrHasDependents)
	var depErr *DependentsError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, int64(2), depErr.Count)
	assert.Equal(t, "cannot delete: 2 dependent records exist", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_ParentMissing(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCategoryRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), 9)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_ForeignKeyViolationOnDelete(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCategoryRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(sqlText(countCourses)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(sqlText(deleteCategory)).WithArgs(int64(7)).WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), 7)

	assert.ErrorIs(t, err, ErrHasDependents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_RetriesOnceOnSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCategoryRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(7)).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(sqlText(countCourses)).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(sqlText(deleteCategory)).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCategory(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_DoesNotRetryTwice(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewCategoryRepository(db, db.logger)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(sqlText(lockCategory)).WithArgs(int64(7)).WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	err := repo.DeleteCategory(context.Background(), 7)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuarded_SQLiteHasNoRowLock(t *testing.T) {
	db, mock := newMockDB(t, DialectSQLite)
	repo := NewCategoryRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlText("SELECT id FROM categories WHERE id = ?") + "$").WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(sqlText("SELECT COUNT(*) FROM courses WHERE category_id = ?")).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), 7), ErrHasDependents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
