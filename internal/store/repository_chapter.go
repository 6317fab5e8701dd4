// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

type chapterRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChapterRepository(db *DB, logger *logger.Logger) ChapterRepository {
	logger.Debug().Msg("creating chapter repository")
	return &chapterRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChapter inserts the chapter and recounts its course's chapters in
// the same transaction. The course row is locked first so that concurrent
// chapter writes recount one after another.
func (r *chapterRepository) CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	var created models.Chapter

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockCourses(ctx, tx, chapter.CourseID); err != nil {
			return err
		}

		insert := r.db.builder.Insert(chaptersTable).
			Columns("course_id", "title", "content", "video", "rank").
			Values(chapter.CourseID, chapter.Title, chapter.Content, chapter.Video, chapter.Rank).
			Suffix(returning(chapterColumns))

		var err error
		created, err = one(ctx, tx, insert, scanChapter, ErrChapterNotFound)
		if err != nil {
			return r.db.writeError(err, "chapter course")
		}
		return r.recount(ctx, tx, created.CourseID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.CreateChapter").Int64("course_id", chapter.CourseID).Msg("error creating chapter")
		return models.Chapter{}, err
	}
	return created, nil
}

// UpdateChapter overwrites the writable columns. When the chapter moves to
// another course both courses are recounted.
func (r *chapterRepository) UpdateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	var updated models.Chapter

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		previous, err := one(ctx, tx,
			r.db.builder.Select(chapterColumns...).From(chaptersTable).Where(sq.Eq{"id": chapter.ID}),
			scanChapter, ErrChapterNotFound)
		if err != nil {
			return err
		}
		if err = r.lockCourses(ctx, tx, previous.CourseID, chapter.CourseID); err != nil {
			return err
		}

		update := r.db.builder.Update(chaptersTable).
			SetMap(map[string]any{
				"course_id":  chapter.CourseID,
				"title":      chapter.Title,
				"content":    chapter.Content,
				"video":      chapter.Video,
				"rank":       chapter.Rank,
				"updated_at": touch,
			}).
			Where(sq.Eq{"id": chapter.ID}).
			Suffix(returning(chapterColumns))

		updated, err = one(ctx, tx, update, scanChapter, ErrChapterNotFound)
		if err != nil {
			if errors.Is(err, ErrChapterNotFound) {
				return err
			}
			return r.db.writeError(err, "chapter course")
		}

		if previous.CourseID != updated.CourseID {
			if err = r.recount(ctx, tx, previous.CourseID); err != nil {
				return err
			}
		}
		return r.recount(ctx, tx, updated.CourseID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.UpdateChapter").Int64("chapter_id", chapter.ID).Msg("error updating chapter")
		return models.Chapter{}, err
	}
	return updated, nil
}

func (r *chapterRepository) FindChapterByID(ctx context.Context, id int64) (models.Chapter, error) {
	query := r.db.builder.Select(chapterColumns...).From(chaptersTable).Where(sq.Eq{"id": id})

	found, err := one(ctx, r.db, query, scanChapter, ErrChapterNotFound)
	if err != nil && !errors.Is(err, ErrChapterNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.FindChapterByID").Int64("chapter_id", id).Msg("error finding chapter")
		return models.Chapter{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, err
}

// ListChapters lists chapters with their course summary.
func (r *chapterRepository) ListChapters(ctx context.Context, query listing.Query) ([]models.Chapter, int64, error) {
	columns := append(qualified(chaptersTable, chapterColumns), chapterRelationColumns...)

	chapters, total, err := list(ctx, r.db, fromChapters, columns, query, scanChapterWithCourse)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.ListChapters").Msg("error listing chapters")
		return nil, 0, err
	}
	return chapters, total, nil
}

func (r *chapterRepository) ChaptersOfCourse(ctx context.Context, courseID int64) ([]models.Chapter, error) {
	query := r.db.builder.Select("id", "course_id", "title", "video", "rank", "created_at", "updated_at").
		From(chaptersTable).
		Where(sq.Eq{"course_id": courseID}).
		OrderBy(listing.RankAsc(chaptersTable)...)

	chapters, err := all(ctx, r.db, query, func(row scanner) (models.Chapter, error) {
		var c models.Chapter
		err := row.Scan(&c.ID, &c.CourseID, &c.Title, &c.Video, &c.Rank, ts(&c.CreatedAt), ts(&c.UpdatedAt))
		return c, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.ChaptersOfCourse").Int64("course_id", courseID).Msg("error reading course chapters")
		return nil, err
	}
	return chapters, nil
}

// DeleteChapter deletes the chapter and recounts its course's chapters.
func (r *chapterRepository) DeleteChapter(ctx context.Context, id int64) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		owner, err := one(ctx, tx,
			r.db.builder.Select("course_id").From(chaptersTable).Where(sq.Eq{"id": id}),
			scanID, ErrChapterNotFound)
		if err != nil {
			return err
		}
		if err = r.lockCourses(ctx, tx, owner); err != nil {
			return err
		}

		deleted, err := one(ctx, tx,
			r.db.builder.Delete(chaptersTable).Where(sq.Eq{"id": id}).Suffix("RETURNING course_id"),
			func(row scanner) (int64, error) {
				var courseID int64
				err := row.Scan(&courseID)
				return courseID, err
			}, ErrChapterNotFound)
		if err != nil {
			return err
		}
		return r.recount(ctx, tx, deleted)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*chapterRepository.DeleteChapter").Int64("chapter_id", id).Msg("error deleting chapter")
		return err
	}
	return nil
}

// lockCourses takes the row locks of the given courses in ascending id
// order. A missing course is skipped; the foreign key rejects the write that
// follows.
func (r *chapterRepository) lockCourses(ctx context.Context, tx *sql.Tx, courseIDs ...int64) error {
	slices.Sort(courseIDs)
	for _, courseID := range slices.Compact(courseIDs) {
		lock := r.db.dialect.lockForUpdate(r.db.builder.Select("id").From(coursesTable).Where(sq.Eq{"id": courseID}))
		if _, err := one(ctx, tx, lock, scanID, ErrCourseNotFound); err != nil && !errors.Is(err, ErrCourseNotFound) {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	return nil
}

// recount sets courses.chapters_count from the chapters table.
func (r *chapterRepository) recount(ctx context.Context, tx *sql.Tx, courseID int64) error {
	update := r.db.builder.Update(coursesTable).
		Set("chapters_count", sq.Expr("(SELECT COUNT(*) FROM chapters WHERE chapters.course_id = courses.id)")).
		Where(sq.Eq{"id": courseID})

	if _, err := exec(ctx, tx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
