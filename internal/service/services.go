// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	CategoryService CategoryService
	CourseService   CourseService
	ChapterService  ChapterService
	ArticleService  ArticleService
	SettingService  SettingService
	LikeService     LikeService
	ChartService    ChartService
	AppInfoService  AppInfoService
}

func NewServices(repositories *store.Repositories, c cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, cfg.App, logger),
		UserService:     NewUserService(repositories.UserRepository, logger),
		CategoryService: NewCategoryService(repositories.CategoryRepository, c, logger),
		CourseService:   NewCourseService(repositories, logger),
		ChapterService:  NewChapterService(repositories, logger),
		ArticleService:  NewArticleService(repositories.ArticleRepository, logger),
		SettingService:  NewSettingService(repositories.SettingRepository, c, logger),
		LikeService:     NewLikeService(repositories.LikeRepository, logger),
		ChartService:    NewChartService(repositories.UserRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
