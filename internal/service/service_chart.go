// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/models"
)

// chartService feeds the admin dashboard charts.
type chartService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewChartService(userRepository store.UserRepository, logger *logger.Logger) ChartService {
	return &chartService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *chartService) SexCount(ctx context.Context) ([]models.SexCount, error) {
	return s.userRepository.CountUsersBySex(ctx)
}

// UserCount returns registrations per month, oldest first.
func (s *chartService) UserCount(ctx context.Context) ([]models.MonthCount, error) {
	return s.userRepository.CountUsersByMonth(ctx)
}
