// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

// settingRepository reads and writes the single settings row seeded by the
// migrations.
type settingRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingRepository) GetSetting(ctx context.Context) (models.Setting, error) {
	query := r.db.builder.Select(settingColumns...).From(settingsTable).OrderBy("id").Limit(1)

	setting, err := one(ctx, r.db, query, scanSetting, ErrSettingNotFound)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*settingRepository.GetSetting").Msg("error reading settings")
		return models.Setting{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return setting, err
}

func (r *settingRepository) UpdateSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	update := r.db.builder.Update(settingsTable).
		Set("name", setting.Name).
		Set("icp", setting.ICP).
		Set("copyright", setting.Copyright).
		Set("updated_at", touch).
		Where(sq.Eq{"id": setting.ID}).
		Suffix(returning(settingColumns))

	updated, err := one(ctx, r.db, update, scanSetting, ErrSettingNotFound)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*settingRepository.UpdateSetting").Msg("error updating settings")
		return models.Setting{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return updated, err
}
