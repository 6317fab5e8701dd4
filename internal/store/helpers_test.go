// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDB(conn, dialect, logger.Nop()), mock
}

// newSQLiteDB opens a migrated in-memory database private to the test.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := NewConnectSQLite(context.Background(), config.DBConfig{
		Driver: string(DialectSQLite),
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func sqlText(s string) string {
	return regexp.QuoteMeta(s)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// fixture seeds one author, one category and one course.
type fixture struct {
	author   models.User
	category models.Category
	course   models.Course
}

func seed(t *testing.T, repos *Repositories) fixture {
	t.Helper()
	ctx := context.Background()

	author, err := repos.UserRepository.CreateUser(ctx, models.User{
		Email: "author@example.com", Username: "author", PasswordHash: "hash", Nickname: "Author",
		Sex: models.SexUnspecified, Role: models.RoleAdministrator,
	})
	require.NoError(t, err)

	category, err := repos.CategoryRepository.CreateCategory(ctx, models.Category{Name: "Backend", Rank: 1})
	require.NoError(t, err)

	course, err := repos.CourseRepository.CreateCourse(ctx, models.Course{
		CategoryID: category.ID, UserID: author.ID, Name: "Go basics", Recommended: true,
	})
	require.NoError(t, err)

	return fixture{author: author, category: category, course: course}
}
