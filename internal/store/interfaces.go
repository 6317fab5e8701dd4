// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// FindUserByLogin matches login against both email and username.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	ListUsers(ctx context.Context, query listing.Query) ([]models.User, int64, error)
	CountUsersBySex(ctx context.Context) ([]models.SexCount, error)
	CountUsersByMonth(ctx context.Context) ([]models.MonthCount, error)
}

// CategoryRepository persists categories. DeleteCategory refuses to delete a
// category that still has courses.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	FindCategoryByID(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context, query listing.Query) ([]models.Category, int64, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CourseRepository persists courses. Reads join the category and author
// summaries. DeleteCourse refuses to delete a course that still has chapters.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, course models.Course) (models.Course, error)
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)
	ListCourses(ctx context.Context, query listing.Query) ([]models.Course, int64, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// ChapterRepository persists chapters and keeps the owning course's
// chapters_count in step with every write.
type ChapterRepository interface {
	CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error)
	UpdateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error)
	FindChapterByID(ctx context.Context, id int64) (models.Chapter, error)
	ListChapters(ctx context.Context, query listing.Query) ([]models.Chapter, int64, error)
	// ChaptersOfCourse lists a course's chapters by rank, without content.
	ChaptersOfCourse(ctx context.Context, courseID int64) ([]models.Chapter, error)
	DeleteChapter(ctx context.Context, id int64) error
}

type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	UpdateArticle(ctx context.Context, article models.Article) (models.Article, error)
	FindArticleByID(ctx context.Context, id int64) (models.Article, error)
	ListArticles(ctx context.Context, query listing.Query) ([]models.Article, int64, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type SettingRepository interface {
	GetSetting(ctx context.Context) (models.Setting, error)
	UpdateSetting(ctx context.Context, setting models.Setting) (models.Setting, error)
}

// LikeRepository stores which users like which courses and maintains the
// course's likes_count.
type LikeRepository interface {
	ToggleLike(ctx context.Context, userID, courseID int64) (models.LikeResult, error)
	ListLikedCourses(ctx context.Context, userID int64, query listing.Query) ([]models.Course, int64, error)
}
