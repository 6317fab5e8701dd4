// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

func TestSQLite_IntegrityGuard(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()
	f := seed(t, repos)

	chapter, err := repos.ChapterRepository.CreateChapter(ctx, models.Chapter{CourseID: f.course.ID, Title: "Intro", Rank: 1})
	require.NoError(t, err)

	// category still has a course
	err = repos.CategoryRepository.DeleteCategory(ctx, f.category.ID)
	var depErr *DependentsError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, int64(1), depErr.Count)
	_, err = repos.CategoryRepository.FindCategoryByID(ctx, f.category.ID)
	require.NoError(t, err, "category must survive a blocked delete")

	// course still has a chapter
	assert.ErrorIs(t, repos.CourseRepository.DeleteCourse(ctx, f.course.ID), ErrHasDependents)

	require.NoError(t, repos.ChapterRepository.DeleteChapter(ctx, chapter.ID))
	require.NoError(t, repos.CourseRepository.DeleteCourse(ctx, f.course.ID))
	require.NoError(t, repos.CategoryRepository.DeleteCategory(ctx, f.category.ID))

	assert.ErrorIs(t, repos.CategoryRepository.DeleteCategory(ctx, f.category.ID), ErrCategoryNotFound)
}

func TestSQLite_ForeignKeysAreEnforced(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO chapters (course_id, title, rank) VALUES (999, 'Orphan', 1)`)
	require.Error(t, err)
	assert.Equal(t, ForeignKeyConstraint, db.errorClassificator.Constraint(err))
}

func TestSQLite_ChaptersCountFollowsWrites(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()
	f := seed(t, repos)

	other, err := repos.CourseRepository.CreateCourse(ctx, models.Course{CategoryID: f.category.ID, UserID: f.author.ID, Name: "Go advanced"})
	require.NoError(t, err)

	first, err := repos.ChapterRepository.CreateChapter(ctx, models.Chapter{CourseID: f.course.ID, Title: "One", Rank: 2})
	require.NoError(t, err)
	_, err = repos.ChapterRepository.CreateChapter(ctx, models.Chapter{CourseID: f.course.ID, Title: "Two", Rank: 1})
	require.NoError(t, err)

	course, err := repos.CourseRepository.FindCourseByID(ctx, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, course.ChaptersCount)

	// move the first chapter to the other course
	first.CourseID = other.ID
	_, err = repos.ChapterRepository.UpdateChapter(ctx, first)
	require.NoError(t, err)

	course, err = repos.CourseRepository.FindCourseByID(ctx, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, course.ChaptersCount)
	other, err = repos.CourseRepository.FindCourseByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, other.ChaptersCount)

	_, err = repos.ChapterRepository.CreateChapter(ctx, models.Chapter{CourseID: 999, Title: "Orphan", Rank: 1})
	assert.ErrorIs(t, err, ErrReferenceViolation)
}

func TestSQLite_ChaptersOfCourseOrderedByRank(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()
	f := seed(t, repos)

	for _, c := range []models.Chapter{
		{Title: "Third", Rank: 2, Content: "body"},
		{Title: "First", Rank: 1},
		{Title: "Fourth", Rank: 3},
		{Title: "Second", Rank: 1},
	} {
		c.CourseID = f.course.ID
		_, err := repos.ChapterRepository.CreateChapter(ctx, c)
		require.NoError(t, err)
	}

	chapters, err := repos.ChapterRepository.ChaptersOfCourse(ctx, f.course.ID)
	require.NoError(t, err)

	titles := make([]string, 0, len(chapters))
	for _, c := range chapters {
		titles = append(titles, c.Title)
		assert.Empty(t, c.Content)
	}
	assert.Equal(t, []string{"First", "Second", "Third", "Fourth"}, titles)
}

func TestSQLite_CourseReadsCarryRelations(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	f := seed(t, repos)

	require.NotNil(t, f.course.Category)
	require.NotNil(t, f.course.User)
	assert.Equal(t, "Backend", f.course.Category.Name)
	assert.Equal(t, "author", f.course.User.Username)
	assert.True(t, f.course.Recommended)
	assert.False(t, f.course.CreatedAt.IsZero())

	_, err := repos.CourseRepository.CreateCourse(context.Background(), models.Course{CategoryID: 999, UserID: f.author.ID, Name: "Nope"})
	assert.ErrorIs(t, err, ErrReferenceViolation)
}

func TestSQLite_Listing(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()

	// ids follow insertion order; listing is rank ASC, then id ASC
	for _, c := range []models.Category{
		{Name: "Go", Rank: 3},
		{Name: "Go 100%", Rank: 1},
		{Name: "Rust", Rank: 2},
		{Name: "Golang", Rank: 1},
		{Name: "Python", Rank: 2},
	} {
		_, err := repos.CategoryRepository.CreateCategory(ctx, c)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		values    url.Values
		wantNames []string
		wantTotal int64
	}{
		{name: "substring", values: url.Values{"name": {"Go"}}, wantNames: []string{"Go 100%", "Golang", "Go"}, wantTotal: 3},
		{name: "trailing space is matched", values: url.Values{"name": {"Go "}}, wantNames: []string{"Go 100%"}, wantTotal: 1},
		{name: "percent is literal", values: url.Values{"name": {"%"}}, wantNames: []string{"Go 100%"}, wantTotal: 1},
		{name: "case sensitive", values: url.Values{"name": {"go"}}, wantNames: []string{}, wantTotal: 0},
		{name: "second page", values: url.Values{"pageSize": {"2"}, "currentPage": {"2"}}, wantNames: []string{"Rust", "Python"}, wantTotal: 5},
		{name: "beyond last page", values: url.Values{"pageSize": {"2"}, "currentPage": {"9"}}, wantNames: []string{}, wantTotal: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := categoriesSpec.Build(tt.values)
			require.NoError(t, err)

			categories, total, err := repos.CategoryRepository.ListCategories(ctx, query)
			require.NoError(t, err)

			names := make([]string, 0, len(categories))
			for _, c := range categories {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestSQLite_Users(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()
	f := seed(t, repos)

	byEmail, err := repos.UserRepository.FindUserByLogin(ctx, "author@example.com")
	require.NoError(t, err)
	byUsername, err := repos.UserRepository.FindUserByLogin(ctx, "author")
	require.NoError(t, err)
	assert.Equal(t, f.author.ID, byEmail.ID)
	assert.Equal(t, f.author.ID, byUsername.ID)

	_, err = repos.UserRepository.CreateUser(ctx, models.User{Email: "author@example.com", Username: "other", PasswordHash: "h", Nickname: "Other"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = repos.UserRepository.CreateUser(ctx, models.User{Email: "ann@example.com", Username: "ann", PasswordHash: "h", Nickname: "Ann", Sex: models.SexFemale})
	require.NoError(t, err)

	bySex, err := repos.UserRepository.CountUsersBySex(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SexCount{{Sex: models.SexFemale, Value: 1}, {Sex: models.SexUnspecified, Value: 1}}, bySex)

	byMonth, err := repos.UserRepository.CountUsersByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth, 1)
	assert.Equal(t, int64(2), byMonth[0].Value)
	assert.Regexp(t, `^\d{4}-\d{2}$`, byMonth[0].Month)
}

func TestSQLite_LikesToggle(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()
	f := seed(t, repos)

	liked, err := repos.LikeRepository.ToggleLike(ctx, f.author.ID, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{CourseID: f.course.ID, Liked: true, LikesCount: 1}, liked)

	courses, total, err := repos.LikeRepository.ListLikedCourses(ctx, f.author.ID, listing.Query{Page: listing.NewPage(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
	assert.Equal(t, 1, courses[0].LikesCount)

	unliked, err := repos.LikeRepository.ToggleLike(ctx, f.author.ID, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{CourseID: f.course.ID, Liked: false, LikesCount: 0}, unliked)

	_, err = repos.LikeRepository.ToggleLike(ctx, f.author.ID, 999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestSQLite_Settings(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()

	setting, err := repos.SettingRepository.GetSetting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "course-cms", setting.Name)

	setting.Copyright = "© 2026"
	updated, err := repos.SettingRepository.UpdateSetting(ctx, setting)
	require.NoError(t, err)
	assert.Equal(t, "© 2026", updated.Copyright)
}

func TestSQLite_Articles(t *testing.T) {
	db := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()

	article, err := repos.ArticleRepository.CreateArticle(ctx, models.Article{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	article.Title = "Hello again"
	updated, err := repos.ArticleRepository.UpdateArticle(ctx, article)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)

	require.NoError(t, repos.ArticleRepository.DeleteArticle(ctx, article.ID))
	assert.ErrorIs(t, repos.ArticleRepository.DeleteArticle(ctx, article.ID), ErrArticleNotFound)
	_, err = repos.ArticleRepository.FindArticleByID(ctx, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
