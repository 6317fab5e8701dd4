// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/models"
)

type settingService struct {
	settingRepository store.SettingRepository
	cache             cache.Cache
	logger            *logger.Logger
}

func NewSettingService(settingRepository store.SettingRepository, c cache.Cache, logger *logger.Logger) SettingService {
	return &settingService{
		settingRepository: settingRepository,
		cache:             c,
		logger:            logger,
	}
}

func (s *settingService) GetSetting(ctx context.Context) (models.Setting, error) {
	return cache.Remember(ctx, s.cache, cache.KeySettings, s.settingRepository.GetSetting)
}

func (s *settingService) UpdateSetting(ctx context.Context, draft models.SettingDraft) (models.Setting, error) {
	setting, err := s.settingRepository.GetSetting(ctx)
	if err != nil {
		return models.Setting{}, err
	}
	draft.Apply(&setting)

	updated, err := s.settingRepository.UpdateSetting(ctx, setting)
	if err != nil {
		return models.Setting{}, err
	}

	cache.Invalidate(ctx, s.cache, cache.KeySettings)
	return updated, nil
}
