// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

type chapterService struct {
	chapterRepository store.ChapterRepository
	courseRepository  store.CourseRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewChapterService(repositories *store.Repositories, logger *logger.Logger) ChapterService {
	return &chapterService{
		chapterRepository: repositories.ChapterRepository,
		courseRepository:  repositories.CourseRepository,
		validator:         validators.NewEntityValidator(),
		logger:            logger,
	}
}

// ChapterDetail returns the chapter together with its course, the course
// author and every chapter of that course ordered by rank.
func (s *chapterService) ChapterDetail(ctx context.Context, id int64) (models.ChapterDetail, error) {
	chapter, err := s.chapterRepository.FindChapterByID(ctx, id)
	if err != nil {
		return models.ChapterDetail{}, err
	}

	course, err := s.courseRepository.FindCourseByID(ctx, chapter.CourseID)
	if err != nil {
		return models.ChapterDetail{}, err
	}

	chapters, err := s.chapterRepository.ChaptersOfCourse(ctx, chapter.CourseID)
	if err != nil {
		return models.ChapterDetail{}, err
	}

	detail := models.ChapterDetail{
		Chapter:  chapter,
		Course:   models.CourseSummary{ID: course.ID, Name: course.Name, UserID: course.UserID},
		Chapters: chapters,
	}
	if course.User != nil {
		detail.User = *course.User
	}

	return detail, nil
}

func (s *chapterService) ListChapters(ctx context.Context, params url.Values) (models.Page[models.Chapter], error) {
	return paginate(ctx, chaptersSpec, params, s.chapterRepository.ListChapters)
}

func (s *chapterService) GetChapter(ctx context.Context, id int64) (models.Chapter, error) {
	return s.chapterRepository.FindChapterByID(ctx, id)
}

func (s *chapterService) CreateChapter(ctx context.Context, draft models.ChapterDraft) (models.Chapter, error) {
	var chapter models.Chapter
	draft.Apply(&chapter)

	if err := s.check(ctx, chapter); err != nil {
		return models.Chapter{}, err
	}

	return s.chapterRepository.CreateChapter(ctx, chapter)
}

func (s *chapterService) UpdateChapter(ctx context.Context, id int64, draft models.ChapterDraft) (models.Chapter, error) {
	chapter, err := s.chapterRepository.FindChapterByID(ctx, id)
	if err != nil {
		return models.Chapter{}, err
	}
	draft.Apply(&chapter)

	if err = s.check(ctx, chapter); err != nil {
		return models.Chapter{}, err
	}

	return s.chapterRepository.UpdateChapter(ctx, chapter)
}

func (s *chapterService) DeleteChapter(ctx context.Context, id int64) error {
	return s.chapterRepository.DeleteChapter(ctx, id)
}

func (s *chapterService) check(ctx context.Context, chapter models.Chapter) error {
	if err := s.validator.Validate(ctx, chapter); err != nil {
		return err
	}

	_, err := s.courseRepository.FindCourseByID(ctx, chapter.CourseID)
	return referenceError(err, validators.FieldCourseID, "course", chapter.CourseID)
}
