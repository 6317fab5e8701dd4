// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

type appInfoService struct {
	version   string
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService reports the configured build version. The moment of
// construction is taken as the server start.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:   cfg.Version,
		startedAt: time.Now().UTC(),
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *appInfoService) AppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:   s.version,
		StartedAt: s.startedAt,
		Uptime:    s.now().Sub(s.startedAt).Round(time.Second).String(),
	}
}
