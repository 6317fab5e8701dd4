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

type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	insert := r.db.builder.Insert(articlesTable).
		Columns("title", "content").
		Values(article.Title, article.Content).
		Suffix(returning(articleColumns))

	created, err := one(ctx, r.db, insert, scanArticle, ErrArticleNotFound)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.CreateArticle").Msg("error creating article")
		return models.Article{}, r.db.writeError(err, "article")
	}
	return created, nil
}

func (r *articleRepository) UpdateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	update := r.db.builder.Update(articlesTable).
		Set("title", article.Title).
		Set("content", article.Content).
		Set("updated_at", touch).
		Where(sq.Eq{"id": article.ID}).
		Suffix(returning(articleColumns))

	updated, err := one(ctx, r.db, update, scanArticle, ErrArticleNotFound)
	if errors.Is(err, ErrArticleNotFound) {
		return models.Article{}, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.UpdateArticle").Int64("article_id", article.ID).Msg("error updating article")
		return models.Article{}, r.db.writeError(err, "article")
	}
	return updated, nil
}

func (r *articleRepository) FindArticleByID(ctx context.Context, id int64) (models.Article, error) {
	query := r.db.builder.Select(articleColumns...).From(articlesTable).Where(sq.Eq{"id": id})

	found, err := one(ctx, r.db, query, scanArticle, ErrArticleNotFound)
	if err != nil && !errors.Is(err, ErrArticleNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.FindArticleByID").Int64("article_id", id).Msg("error finding article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, err
}

func (r *articleRepository) ListArticles(ctx context.Context, query listing.Query) ([]models.Article, int64, error) {
	articles, total, err := list(ctx, r.db, fromTable(articlesTable), qualified(articlesTable, articleColumns), query, scanArticle)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.ListArticles").Msg("error listing articles")
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) DeleteArticle(ctx context.Context, id int64) error {
	affected, err := exec(ctx, r.db, r.db.builder.Delete(articlesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.DeleteArticle").Int64("article_id", id).Msg("error deleting article")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrArticleNotFound
	}
	return nil
}
