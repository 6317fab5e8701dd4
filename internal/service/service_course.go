// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

type courseService struct {
	courseRepository   store.CourseRepository
	categoryRepository store.CategoryRepository
	userRepository     store.UserRepository
	chapterRepository  store.ChapterRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewCourseService(repositories *store.Repositories, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository:   repositories.CourseRepository,
		categoryRepository: repositories.CategoryRepository,
		userRepository:     repositories.UserRepository,
		chapterRepository:  repositories.ChapterRepository,
		validator:          validators.NewEntityValidator(),
		logger:             logger,
	}
}

// Home collects the recommended, the most liked and the introductory
// courses, newest first within each section.
func (s *courseService) Home(ctx context.Context) (models.Home, error) {
	page := listing.NewPage(1, homeSectionSize)

	recommended, _, err := s.courseRepository.ListCourses(ctx,
		listing.Query{Page: page, OrderBy: listing.IDDesc("courses")}.Where("courses.recommended", true))
	if err != nil {
		return models.Home{}, fmt.Errorf("error reading recommended courses: %w", err)
	}

	liked, _, err := s.courseRepository.ListCourses(ctx,
		listing.Query{Page: page, OrderBy: []string{"courses.likes_count DESC", "courses.id DESC"}})
	if err != nil {
		return models.Home{}, fmt.Errorf("error reading most liked courses: %w", err)
	}

	introductory, _, err := s.courseRepository.ListCourses(ctx,
		listing.Query{Page: page, OrderBy: listing.IDDesc("courses")}.Where("courses.introductory", true))
	if err != nil {
		return models.Home{}, fmt.Errorf("error reading introductory courses: %w", err)
	}

	return models.Home{
		RecommendedCourses:  recommended,
		LikesCourses:        liked,
		IntroductoryCourses: introductory,
	}, nil
}

// CourseDetail returns the course with its category, author and the rank
// ordered chapter list.
func (s *courseService) CourseDetail(ctx context.Context, id int64) (models.CourseDetail, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.CourseDetail{}, err
	}

	chapters, err := s.chapterRepository.ChaptersOfCourse(ctx, id)
	if err != nil {
		return models.CourseDetail{}, err
	}

	return models.CourseDetail{Course: course, Chapters: chapters}, nil
}

func (s *courseService) CategoryCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error) {
	return paginate(ctx, categoryCoursesSpec, params, s.courseRepository.ListCourses)
}

func (s *courseService) SearchCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error) {
	return paginate(ctx, searchSpec, params, s.courseRepository.ListCourses)
}

func (s *courseService) ListCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error) {
	return paginate(ctx, coursesSpec, params, s.courseRepository.ListCourses)
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	return s.courseRepository.FindCourseByID(ctx, id)
}

func (s *courseService) CreateCourse(ctx context.Context, draft models.CourseDraft) (models.Course, error) {
	var course models.Course
	draft.Apply(&course)

	if err := s.check(ctx, course); err != nil {
		return models.Course{}, err
	}

	return s.courseRepository.CreateCourse(ctx, course)
}

func (s *courseService) UpdateCourse(ctx context.Context, id int64, draft models.CourseDraft) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	draft.Apply(&course)

	if err = s.check(ctx, course); err != nil {
		return models.Course{}, err
	}

	return s.courseRepository.UpdateCourse(ctx, course)
}

// DeleteCourse removes a course without chapters. A course that still has
// chapters is left intact and a *store.DependentsError is returned.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepository.DeleteCourse(ctx, id)
}

// check validates the fields of course and then the existence of the
// category and the author it references.
func (s *courseService) check(ctx context.Context, course models.Course) error {
	if err := s.validator.Validate(ctx, course); err != nil {
		return err
	}

	_, categoryErr := s.categoryRepository.FindCategoryByID(ctx, course.CategoryID)
	_, userErr := s.userRepository.FindUserByID(ctx, course.UserID)

	err := validators.Join(
		referenceError(categoryErr, validators.FieldCategoryID, "category", course.CategoryID),
		referenceError(userErr, validators.FieldUserID, "user", course.UserID),
	)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*courseService.check").Msg("course references rejected")
	}
	return err
}
