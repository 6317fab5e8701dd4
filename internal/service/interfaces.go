// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/course-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and checks access tokens.
type AuthService interface {
	// SignUp registers an ordinary account.
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)
	// SignIn verifies credentials and issues a token.
	SignIn(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// AdminSignIn is SignIn restricted to administrators.
	AdminSignIn(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authorize resolves a raw token to its user and enforces the required
	// role. RoleOrdinary admits any existing user.
	Authorize(ctx context.Context, tokenString string, required models.Role) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, params url.Values) (models.Page[models.User], error)
	CreateUser(ctx context.Context, draft models.UserDraft) (models.User, error)
	UpdateUser(ctx context.Context, id int64, draft models.UserDraft) (models.User, error)

	UpdateProfile(ctx context.Context, actor models.User, draft models.ProfileDraft) (models.User, error)
	UpdateAccount(ctx context.Context, actor models.User, draft models.AccountDraft) (models.User, error)

	// EnsureAdministrator creates the administrator account with the given
	// email and password unless a user with that email exists.
	EnsureAdministrator(ctx context.Context, email, password string) error
}

type CategoryService interface {
	// AllCategories returns every category ordered by rank.
	AllCategories(ctx context.Context) ([]models.Category, error)
	ListCategories(ctx context.Context, params url.Values) (models.Page[models.Category], error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, draft models.CategoryDraft) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, draft models.CategoryDraft) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CourseService interface {
	Home(ctx context.Context) (models.Home, error)
	CourseDetail(ctx context.Context, id int64) (models.CourseDetail, error)
	// CategoryCourses lists the courses of the category named by the
	// required categoryId parameter.
	CategoryCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error)
	SearchCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error)

	ListCourses(ctx context.Context, params url.Values) (models.Page[models.Course], error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)
	CreateCourse(ctx context.Context, draft models.CourseDraft) (models.Course, error)
	UpdateCourse(ctx context.Context, id int64, draft models.CourseDraft) (models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type ChapterService interface {
	ChapterDetail(ctx context.Context, id int64) (models.ChapterDetail, error)

	ListChapters(ctx context.Context, params url.Values) (models.Page[models.Chapter], error)
	GetChapter(ctx context.Context, id int64) (models.Chapter, error)
	CreateChapter(ctx context.Context, draft models.ChapterDraft) (models.Chapter, error)
	UpdateChapter(ctx context.Context, id int64, draft models.ChapterDraft) (models.Chapter, error)
	DeleteChapter(ctx context.Context, id int64) error
}

type ArticleService interface {
	ListArticles(ctx context.Context, params url.Values) (models.Page[models.Article], error)
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	CreateArticle(ctx context.Context, draft models.ArticleDraft) (models.Article, error)
	UpdateArticle(ctx context.Context, id int64, draft models.ArticleDraft) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type SettingService interface {
	GetSetting(ctx context.Context) (models.Setting, error)
	UpdateSetting(ctx context.Context, draft models.SettingDraft) (models.Setting, error)
}

type LikeService interface {
	// ToggleLike likes the course for actor, or removes the like when it
	// already exists.
	ToggleLike(ctx context.Context, actor models.User, courseID int64) (models.LikeResult, error)
	LikedCourses(ctx context.Context, actor models.User, params url.Values) (models.Page[models.Course], error)
}

type ChartService interface {
	SexCount(ctx context.Context) ([]models.SexCount, error)
	UserCount(ctx context.Context) ([]models.MonthCount, error)
}

type AppInfoService interface {
	AppInfo(ctx context.Context) models.AppInfo
}
