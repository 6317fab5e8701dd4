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

type articleService struct {
	articleRepository store.ArticleRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewArticleService(articleRepository store.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		validator:         validators.NewEntityValidator(),
		logger:            logger,
	}
}

func (s *articleService) ListArticles(ctx context.Context, params url.Values) (models.Page[models.Article], error) {
	return paginate(ctx, articlesSpec, params, s.articleRepository.ListArticles)
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	return s.articleRepository.FindArticleByID(ctx, id)
}

func (s *articleService) CreateArticle(ctx context.Context, draft models.ArticleDraft) (models.Article, error) {
	var article models.Article
	draft.Apply(&article)

	if err := s.validator.Validate(ctx, article); err != nil {
		return models.Article{}, err
	}

	return s.articleRepository.CreateArticle(ctx, article)
}

func (s *articleService) UpdateArticle(ctx context.Context, id int64, draft models.ArticleDraft) (models.Article, error) {
	article, err := s.articleRepository.FindArticleByID(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	draft.Apply(&article)

	if err = s.validator.Validate(ctx, article); err != nil {
		return models.Article{}, err
	}

	return s.articleRepository.UpdateArticle(ctx, article)
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	return s.articleRepository.DeleteArticle(ctx, id)
}
