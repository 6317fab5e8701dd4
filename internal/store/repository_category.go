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

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	insert := r.db.builder.Insert(categoriesTable).
		Columns("name", "rank").
		Values(category.Name, category.Rank).
		Suffix(returning(categoryColumns))

	created, err := one(ctx, r.db, insert, scanCategory, ErrCategoryNotFound)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error creating category")
		return models.Category{}, r.db.writeError(err, "category")
	}
	return created, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	update := r.db.builder.Update(categoriesTable).
		Set("name", category.Name).
		Set("rank", category.Rank).
		Set("updated_at", touch).
		Where(sq.Eq{"id": category.ID}).
		Suffix(returning(categoryColumns))

	updated, err := one(ctx, r.db, update, scanCategory, ErrCategoryNotFound)
	if errors.Is(err, ErrCategoryNotFound) {
		return models.Category{}, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.UpdateCategory").Int64("category_id", category.ID).Msg("error updating category")
		return models.Category{}, r.db.writeError(err, "category")
	}
	return updated, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	query := r.db.builder.Select(categoryColumns...).From(categoriesTable).Where(sq.Eq{"id": id})

	found, err := one(ctx, r.db, query, scanCategory, ErrCategoryNotFound)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.FindCategoryByID").Int64("category_id", id).Msg("error finding category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, err
}

func (r *categoryRepository) ListCategories(ctx context.Context, query listing.Query) ([]models.Category, int64, error) {
	categories, total, err := list(ctx, r.db, fromTable(categoriesTable), qualified(categoriesTable, categoryColumns), query, scanCategory)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error listing categories")
		return nil, 0, err
	}
	return categories, total, nil
}

// AllCategories returns every category by rank, then id.
func (r *categoryRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	query := r.db.builder.Select(categoryColumns...).
		From(categoriesTable).
		OrderBy(listing.RankAsc(categoriesTable)...)

	categories, err := all(ctx, r.db, query, scanCategory)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.AllCategories").Msg("error reading categories")
		return nil, err
	}
	return categories, nil
}

// DeleteCategory deletes a category that no course references. Otherwise it
// returns a [*DependentsError] and leaves the category intact.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.deleteGuarded(ctx, categoryCourses, id)
}
