// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
)

// RedisCache is a Cache over a Redis server.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisCache connects to the server named by cfg and pings it.
func NewRedisCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingRedis, err)
	}

	log.Info().Str("address", cfg.RedisAddress).Msg("connected to redis")
	return newRedisCache(client, cfg.TTL, log), nil
}

func newRedisCache(client redis.Cmdable, ttl time.Duration, log *logger.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: log}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingCache, err)
	}

	if err = json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCache, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCache, err)
	}
	return nil
}
