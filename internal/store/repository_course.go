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

type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse inserts the course and returns it re-read with its category
// and author. The counters always start at zero.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	insert := r.db.builder.Insert(coursesTable).
		Columns("category_id", "user_id", "name", "image", "recommended", "introductory", "content").
		Values(course.CategoryID, course.UserID, course.Name, course.Image, course.Recommended, course.Introductory, course.Content).
		Suffix(returning(courseColumns))

	created, err := one(ctx, r.db, insert, scanCourse, ErrCourseNotFound)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error creating course")
		return models.Course{}, r.db.writeError(err, "course category or author")
	}
	return r.FindCourseByID(ctx, created.ID)
}

// UpdateCourse overwrites the writable columns. likes_count and
// chapters_count are maintained elsewhere and never written here.
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	update := r.db.builder.Update(coursesTable).
		SetMap(map[string]any{
			"category_id":  course.CategoryID,
			"user_id":      course.UserID,
			"name":         course.Name,
			"image":        course.Image,
			"recommended":  course.Recommended,
			"introductory": course.Introductory,
			"content":      course.Content,
			"updated_at":   touch,
		}).
		Where(sq.Eq{"id": course.ID}).
		Suffix(returning(courseColumns))

	_, err := one(ctx, r.db, update, scanCourse, ErrCourseNotFound)
	if errors.Is(err, ErrCourseNotFound) {
		return models.Course{}, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.UpdateCourse").Int64("course_id", course.ID).Msg("error updating course")
		return models.Course{}, r.db.writeError(err, "course category or author")
	}
	return r.FindCourseByID(ctx, course.ID)
}

// FindCourseByID returns the course with its category and author summaries.
func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	query := fromCourses(r.db.builder.Select(r.columns()...)).Where(sq.Eq{"courses.id": id})

	found, err := one(ctx, r.db, query, scanCourseWithRelations, ErrCourseNotFound)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.FindCourseByID").Int64("course_id", id).Msg("error finding course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, err
}

func (r *courseRepository) ListCourses(ctx context.Context, query listing.Query) ([]models.Course, int64, error) {
	courses, total, err := list(ctx, r.db, fromCourses, r.columns(), query, scanCourseWithRelations)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.ListCourses").Msg("error listing courses")
		return nil, 0, err
	}
	return courses, total, nil
}

// DeleteCourse deletes a course that has no chapters. Otherwise it returns a
// [*DependentsError] and leaves the course intact.
func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	return r.db.deleteGuarded(ctx, courseChapters, id)
}

func (r *courseRepository) columns() []string {
	return append(qualified(coursesTable, courseColumns), courseRelationColumns...)
}
