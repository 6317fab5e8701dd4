// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// ToggleLike likes the course for the user, or removes the like when it
// already exists, and moves courses.likes_count by one in the same
// transaction.
func (r *likeRepository) ToggleLike(ctx context.Context, userID, courseID int64) (models.LikeResult, error) {
	log := logger.FromContext(ctx)
	result := models.LikeResult{CourseID: courseID}

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		lock := r.db.dialect.lockForUpdate(r.db.builder.Select("id").From(coursesTable).Where(sq.Eq{"id": courseID}))
		if _, err := one(ctx, tx, lock, scanID, ErrCourseNotFound); err != nil {
			return err
		}

		likeID, err := one(ctx, tx,
			r.db.builder.Select("id").From(likesTable).Where(sq.Eq{"course_id": courseID, "user_id": userID}),
			scanID, ErrNotFound)

		var delta sq.Sqlizer
		switch {
		case errors.Is(err, ErrNotFound):
			insert := r.db.builder.Insert(likesTable).Columns("course_id", "user_id").Values(courseID, userID)
			if _, err = exec(ctx, tx, insert); err != nil {
				return r.db.writeError(err, "like")
			}
			result.Liked = true
			delta = sq.Expr("likes_count + 1")
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		default:
			if _, err = exec(ctx, tx, r.db.builder.Delete(likesTable).Where(sq.Eq{"id": likeID})); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			delta = sq.Expr("likes_count - 1")
		}

		update := r.db.builder.Update(coursesTable).
			Set("likes_count", delta).
			Where(sq.Eq{"id": courseID}).
			Suffix("RETURNING likes_count")
		result.LikesCount, err = one(ctx, tx, update, func(row scanner) (int, error) {
			var n int
			err := row.Scan(&n)
			return n, err
		}, ErrCourseNotFound)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.ToggleLike").Int64("user_id", userID).Int64("course_id", courseID).Msg("error toggling like")
		return models.LikeResult{}, err
	}

	log.Debug().Str("func", "*likeRepository.ToggleLike").Int64("user_id", userID).Int64("course_id", courseID).Bool("liked", result.Liked).Msg("like toggled")
	return result, nil
}

// ListLikedCourses lists the courses the user likes, most recently liked
// first unless the query says otherwise.
func (r *likeRepository) ListLikedCourses(ctx context.Context, userID int64, query listing.Query) ([]models.Course, int64, error) {
	from := func(b sq.SelectBuilder) sq.SelectBuilder {
		return fromCourses(b).Join("likes ON likes.course_id = courses.id")
	}
	query = query.Where("likes.user_id", userID)
	if len(query.OrderBy) == 0 {
		query.OrderBy = listing.IDDesc(likesTable)
	}

	columns := append(qualified(coursesTable, courseColumns), courseRelationColumns...)
	courses, total, err := list(ctx, r.db, from, columns, query, scanCourseWithRelations)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*likeRepository.ListLikedCourses").Int64("user_id", userID).Msg("error listing liked courses")
		return nil, 0, err
	}
	return courses, total, nil
}

func scanID(row scanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}
