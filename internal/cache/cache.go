// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps rarely changing public data (the category list and
// the site settings) close to the HTTP layer. A Redis backed implementation
// is used when an address is configured, otherwise every lookup misses.
package cache

import (
	"context"
	"errors"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
)

// Keys of the cached entries.
const (
	KeyCategories = "course-cms:categories"
	KeySettings   = "course-cms:settings"
)

// ErrMiss is returned by Get when the key holds no value.
var ErrMiss = errors.New("cache miss")

// Cache stores JSON encoded values under string keys.
//
//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock
type Cache interface {
	// Get decodes the value stored under key into dest. ErrMiss is
	// returned when nothing is stored.
	Get(ctx context.Context, key string, dest any) error
	// Set stores value under key for the configured lifetime.
	Set(ctx context.Context, key string, value any) error
	// Delete drops keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// NewCache returns a Redis cache when cfg names an address and a no-op
// cache otherwise.
func NewCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	if cfg.RedisAddress == "" {
		log.Info().Msg("redis address is not set, caching disabled")
		return Nop{}, nil
	}

	return NewRedisCache(ctx, cfg, log)
}

// Remember returns the value stored under key, calling load and storing its
// result on a miss. Cache failures are logged and never fail the read.
func Remember[T any](ctx context.Context, c Cache, key string, load func(context.Context) (T, error)) (T, error) {
	log := logger.FromContext(ctx)

	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrMiss) {
		log.Warn().Err(err).Str("func", "cache.Remember").Str("key", key).Msg("cache read failed")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err = c.Set(ctx, key, value); err != nil {
		log.Warn().Err(err).Str("func", "cache.Remember").Str("key", key).Msg("cache write failed")
	}

	return value, nil
}

// Invalidate drops keys and logs a failure instead of returning it.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "cache.Invalidate").
			Strs("keys", keys).
			Msg("cache invalidation failed")
	}
}

// Nop is a Cache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, any) error  { return ErrMiss }
func (Nop) Set(context.Context, string, any) error  { return nil }
func (Nop) Delete(context.Context, ...string) error { return nil }
