// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

// categoryService serves categories. The full rank-ordered list is cached
// and dropped on every write.
type categoryService struct {
	categoryRepository store.CategoryRepository
	cache              cache.Cache
	validator          validators.Validator
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, c cache.Cache, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		cache:              c,
		validator:          validators.NewEntityValidator(),
		logger:             logger,
	}
}

func (s *categoryService) AllCategories(ctx context.Context) ([]models.Category, error) {
	return cache.Remember(ctx, s.cache, cache.KeyCategories, s.categoryRepository.AllCategories)
}

func (s *categoryService) ListCategories(ctx context.Context, params url.Values) (models.Page[models.Category], error) {
	return paginate(ctx, categoriesSpec, params, s.categoryRepository.ListCategories)
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return s.categoryRepository.FindCategoryByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, draft models.CategoryDraft) (models.Category, error) {
	var category models.Category
	draft.Apply(&category)

	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, err
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, err
	}

	cache.Invalidate(ctx, s.cache, cache.KeyCategories)
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, draft models.CategoryDraft) (models.Category, error) {
	category, err := s.categoryRepository.FindCategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	draft.Apply(&category)

	if err = s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, err
	}

	updated, err := s.categoryRepository.UpdateCategory(ctx, category)
	if err != nil {
		return models.Category{}, err
	}

	cache.Invalidate(ctx, s.cache, cache.KeyCategories)
	return updated, nil
}

// DeleteCategory removes a category without courses. A category that still
// has courses is left intact and a *store.DependentsError is returned.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, s.cache, cache.KeyCategories)
	return nil
}
