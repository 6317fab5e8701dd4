// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-cms/models"
)

var userRowColumns = []string{
	"id", "email", "username", "password", "nickname", "sex",
	"company", "introduce", "avatar", "role", "created_at", "updated_at",
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	user := models.User{
		Email:        "john@example.com",
		Username:     "john",
		PasswordHash: "hash",
		Nickname:     "John",
		Sex:          models.SexUnspecified,
	}
	now := time.Now()

	mock.ExpectQuery(sqlText("INSERT INTO users (email,username,password,nickname,sex,company,introduce,avatar,role) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, email")).
		WithArgs(user.Email, user.Username, user.PasswordHash, user.Nickname, user.Sex, "", "", "", models.RoleOrdinary).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, user.Email, user.Username, "hash", user.Nickname, 2, "", "", "", 0, now, now))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.Equal(t, models.SexUnspecified, created.Sex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.Error(t, err)
}

func TestFindUserByLogin_MatchesEmailOrUsername(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)
	now := time.Now()

	mock.ExpectQuery(sqlText("FROM users WHERE (email = $1 OR username = $2) LIMIT 1")).
		WithArgs("john", "john").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(4, "john@example.com", "john", "hash", "John", 0, "", "", "", 100, now, now))

	found, err := repo.FindUserByLogin(context.Background(), "john")

	require.NoError(t, err)
	assert.Equal(t, int64(4), found.ID)
	assert.True(t, found.IsAdministrator())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByID_QueryError(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	repo := NewUserRepository(db, db.logger)

	mock.ExpectQuery("UPDATE users SET").WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateUser(context.Background(), models.User{ID: 42})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
