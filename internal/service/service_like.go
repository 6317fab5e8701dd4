// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/models"
)

type likeService struct {
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

func NewLikeService(likeRepository store.LikeRepository, logger *logger.Logger) LikeService {
	return &likeService{
		likeRepository: likeRepository,
		logger:         logger,
	}
}

func (s *likeService) ToggleLike(ctx context.Context, actor models.User, courseID int64) (models.LikeResult, error) {
	if courseID <= 0 {
		return models.LikeResult{}, fmt.Errorf("%w: courseId must be a positive integer", ErrInvalidDataProvided)
	}

	result, err := s.likeRepository.ToggleLike(ctx, actor.ID, courseID)
	if err != nil {
		return models.LikeResult{}, err
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", actor.ID).
		Int64("course_id", courseID).
		Bool("liked", result.Liked).
		Msg("like toggled")
	return result, nil
}

func (s *likeService) LikedCourses(ctx context.Context, actor models.User, params url.Values) (models.Page[models.Course], error) {
	return paginate(ctx, likedCoursesSpec, params, func(ctx context.Context, query listing.Query) ([]models.Course, int64, error) {
		return s.likeRepository.ListLikedCourses(ctx, actor.ID, query)
	})
}
