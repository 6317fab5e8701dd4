// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/course-cms/internal/logger"

// Repositories groups every repository built on one database connection.
type Repositories struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	CourseRepository   CourseRepository
	ChapterRepository  ChapterRepository
	ArticleRepository  ArticleRepository
	SettingRepository  SettingRepository
	LikeRepository     LikeRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		CourseRepository:   NewCourseRepository(db, logger),
		ChapterRepository:  NewChapterRepository(db, logger),
		ArticleRepository:  NewArticleRepository(db, logger),
		SettingRepository:  NewSettingRepository(db, logger),
		LikeRepository:     NewLikeRepository(db, logger),
	}
}
