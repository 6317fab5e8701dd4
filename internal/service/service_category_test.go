// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/mock"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

func newTestCategorySvc(ctrl *gomock.Controller) (CategoryService, *mock.MockCategoryRepository, *mock.MockCache) {
	repo := mock.NewMockCategoryRepository(ctrl)
	c := mock.NewMockCache(ctrl)
	return NewCategoryService(repo, c, logger.Nop()), repo, c
}

func TestCategoryService_AllCategories_ReadsThroughCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, c := newTestCategorySvc(ctrl)
	ctx := context.Background()
	categories := []models.Category{{ID: 1, Name: "Backend", Rank: 1}}

	gomock.InOrder(
		c.EXPECT().Get(ctx, cache.KeyCategories, gomock.Any()).Return(cache.ErrMiss),
		repo.EXPECT().AllCategories(ctx).Return(categories, nil),
		c.EXPECT().Set(ctx, cache.KeyCategories, categories).Return(nil),
	)

	got, err := svc.AllCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCategoryService_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCategorySvc(ctrl)

	repo.EXPECT().ListCategories(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q listing.Query) ([]models.Category, int64, error) {
			assert.Equal(t, listing.NewPage(1, 5), q.Page)
			assert.Equal(t, []listing.Predicate{{Column: "categories.name", Op: listing.OpContains, Value: "Java"}}, q.Predicates)
			assert.Equal(t, []string{"categories.rank ASC", "categories.id ASC"}, q.OrderBy)
			return []models.Category{{ID: 2, Name: "Java"}}, 3, nil
		},
	)

	page, err := svc.ListCategories(context.Background(), url.Values{
		"name":        {"Java"},
		"currentPage": {"0"},
		"pageSize":    {"-5"},
		"injected":    {"1=1"},
	})

	require.NoError(t, err)
	assert.Len(t, page.Rows, 1)
	assert.Equal(t, models.Pagination{Total: 3, CurrentPage: 1, PageSize: 5}, page.Pagination)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("valid category is stored and the cache dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, c := newTestCategorySvc(ctrl)

		repo.EXPECT().CreateCategory(gomock.Any(), models.Category{Name: "Go", Rank: 1}).
			Return(models.Category{ID: 4, Name: "Go", Rank: 1}, nil)
		c.EXPECT().Delete(gomock.Any(), cache.KeyCategories).Return(nil)

		created, err := svc.CreateCategory(context.Background(), models.CategoryDraft{Name: ptr("Go"), Rank: ptr(1)})

		require.NoError(t, err)
		assert.Equal(t, int64(4), created.ID)
	})

	t.Run("invalid category never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestCategorySvc(ctrl)

		_, err := svc.CreateCategory(context.Background(), models.CategoryDraft{Name: ptr("G")})

		assert.ErrorIs(t, err, validators.ErrValidationFailed)
	})
}

func TestCategoryService_UpdateCategory_KeepsUntouchedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, c := newTestCategorySvc(ctrl)

	repo.EXPECT().FindCategoryByID(gomock.Any(), int64(4)).Return(models.Category{ID: 4, Name: "Go", Rank: 3}, nil)
	repo.EXPECT().UpdateCategory(gomock.Any(), models.Category{ID: 4, Name: "Golang", Rank: 3}).
		Return(models.Category{ID: 4, Name: "Golang", Rank: 3}, nil)
	c.EXPECT().Delete(gomock.Any(), cache.KeyCategories).Return(errors.New("redis down"))

	updated, err := svc.UpdateCategory(context.Background(), 4, models.CategoryDraft{Name: ptr("Golang")})

	require.NoError(t, err, "a failed invalidation must not fail the write")
	assert.Equal(t, "Golang", updated.Name)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("dependents block the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestCategorySvc(ctrl)
		repo.EXPECT().DeleteCategory(gomock.Any(), int64(1)).Return(&store.DependentsError{Count: 2})

		err := svc.DeleteCategory(context.Background(), 1)

		assert.ErrorIs(t, err, store.ErrHasDependents)
		assert.EqualError(t, err, "cannot delete: 2 dependent records exist")
	})

	t.Run("success drops the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, c := newTestCategorySvc(ctrl)
		repo.EXPECT().DeleteCategory(gomock.Any(), int64(1)).Return(nil)
		c.EXPECT().Delete(gomock.Any(), cache.KeyCategories).Return(nil)

		assert.NoError(t, svc.DeleteCategory(context.Background(), 1))
	})
}

func TestSettingService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingRepository(ctrl)
	c := mock.NewMockCache(ctrl)
	svc := NewSettingService(repo, c, logger.Nop())
	ctx := context.Background()

	current := models.Setting{ID: 1, Name: "course-cms", ICP: "old"}
	want := models.Setting{ID: 1, Name: "course-cms", ICP: "new"}

	repo.EXPECT().GetSetting(ctx).Return(current, nil)
	repo.EXPECT().UpdateSetting(ctx, want).Return(want, nil)
	c.EXPECT().Delete(ctx, cache.KeySettings).Return(nil)

	got, err := svc.UpdateSetting(ctx, models.SettingDraft{ICP: ptr("new")})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
