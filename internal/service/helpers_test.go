// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/course-cms/internal/mock"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/utils"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// storeMocks holds one gomock repository per store interface.
type storeMocks struct {
	users      *mock.MockUserRepository
	categories *mock.MockCategoryRepository
	courses    *mock.MockCourseRepository
	chapters   *mock.MockChapterRepository
	articles   *mock.MockArticleRepository
	settings   *mock.MockSettingRepository
	likes      *mock.MockLikeRepository
}

func newStoreMocks(ctrl *gomock.Controller) (*storeMocks, *store.Repositories) {
	m := &storeMocks{
		users:      mock.NewMockUserRepository(ctrl),
		categories: mock.NewMockCategoryRepository(ctrl),
		courses:    mock.NewMockCourseRepository(ctrl),
		chapters:   mock.NewMockChapterRepository(ctrl),
		articles:   mock.NewMockArticleRepository(ctrl),
		settings:   mock.NewMockSettingRepository(ctrl),
		likes:      mock.NewMockLikeRepository(ctrl),
	}
	return m, &store.Repositories{
		UserRepository:     m.users,
		CategoryRepository: m.categories,
		CourseRepository:   m.courses,
		ChapterRepository:  m.chapters,
		ArticleRepository:  m.articles,
		SettingRepository:  m.settings,
		LikeRepository:     m.likes,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func ptr[T any](v T) *T {
	return &v
}
