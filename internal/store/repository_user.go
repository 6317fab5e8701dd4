// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

// userRepository is the SQL implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// fields (ID, timestamps) filled in.
//
// Error handling:
//   - unique violation on email or username → [ErrAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert(usersTable).
		Columns("email", "username", "password", "nickname", "sex", "company", "introduce", "avatar", "role").
		Values(user.Email, user.Username, user.PasswordHash, user.Nickname, user.Sex, user.Company, user.Introduce, user.Avatar, user.Role).
		Suffix(returning(userColumns))

	created, err := one(ctx, r.db, insert, scanUser, ErrUserNotFound)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, r.db.writeError(err, "user with this email or username")
	}

	return created, nil
}

// UpdateUser overwrites every writable column of the user identified by
// user.ID, including the password hash.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder.Update(usersTable).
		SetMap(map[string]any{
			"email":      user.Email,
			"username":   user.Username,
			"password":   user.PasswordHash,
			"nickname":   user.Nickname,
			"sex":        user.Sex,
			"company":    user.Company,
			"introduce":  user.Introduce,
			"avatar":     user.Avatar,
			"role":       user.Role,
			"updated_at": touch,
		}).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returning(userColumns))

	updated, err := one(ctx, r.db, update, scanUser, ErrUserNotFound)
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, r.db.writeError(err, "user with this email or username")
	}

	return updated, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

// FindUserByLogin retrieves the user whose email or username equals login.
// An unknown login yields [ErrUserNotFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, sq.Or{sq.Eq{"email": login}, sq.Eq{"username": login}})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := one(ctx, r.db, r.db.builder.Select(userColumns...).From(usersTable).Where(where).Limit(1), scanUser, ErrUserNotFound)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, err
}

func (r *userRepository) ListUsers(ctx context.Context, query listing.Query) ([]models.User, int64, error) {
	users, total, err := list(ctx, r.db, fromTable(usersTable), qualified(usersTable, userColumns), query, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, err
	}
	return users, total, nil
}

// CountUsersBySex groups all users by sex.
func (r *userRepository) CountUsersBySex(ctx context.Context) ([]models.SexCount, error) {
	query := r.db.builder.Select("sex", "COUNT(*)").
		From(usersTable).
		GroupBy("sex").
		OrderBy("sex")

	counts, err := all(ctx, r.db, query, func(row scanner) (models.SexCount, error) {
		var c models.SexCount
		err := row.Scan(&c.Sex, &c.Value)
		return c, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsersBySex").Msg("error counting users by sex")
		return nil, err
	}
	return counts, nil
}

// CountUsersByMonth counts registrations per calendar month (YYYY-MM),
// oldest month first.
func (r *userRepository) CountUsersByMonth(ctx context.Context) ([]models.MonthCount, error) {
	month := r.db.dialect.month("created_at")
	query := r.db.builder.Select(month+" AS month", "COUNT(*)").
		From(usersTable).
		GroupBy(month).
		OrderBy("month")

	counts, err := all(ctx, r.db, query, func(row scanner) (models.MonthCount, error) {
		var c models.MonthCount
		err := row.Scan(&c.Month, &c.Value)
		return c, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsersByMonth").Msg("error counting users by month")
		return nil, err
	}
	return counts, nil
}
