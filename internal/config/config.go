// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the complete configuration of the server process.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Cache Cache `envPrefix:"CACHE_"`

	Server Server `envPrefix:"SERVER_"`

	Adapter Adapter `envPrefix:"ADAPTER_"`

	JSONFilePath string `env:"CONFIG"`
}

// App holds the token settings and the optional bootstrap administrator.
type App struct {
	// TokenSignKey is the process-wide HMAC secret of issued tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminEmail and AdminPassword, when both set, make the server ensure an
	// administrator account with these credentials exists on startup.
	AdminEmail string `env:"ADMIN_EMAIL"`

	AdminPassword string `env:"ADMIN_PASSWORD"`

	Version string `env:"VERSION"`
}

type Storage struct {
	DB DBConfig `envPrefix:"DB_"`
}

type DBConfig struct {
	// Driver is "pgx" (PostgreSQL) or "sqlite3".
	Driver string `env:"DRIVER"`

	DSN string `env:"DATABASE_URI"`

	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Cache configures the Redis read-through cache. An empty RedisAddress
// disables caching.
type Cache struct {
	RedisAddress string `env:"REDIS_ADDRESS"`

	RedisPassword string `env:"REDIS_PASSWORD"`

	RedisDB int `env:"REDIS_DB"`

	TTL time.Duration `env:"TTL"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter configures the admin client's connection to the server.
type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	Token string `env:"TOKEN"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles the server configuration from the .env
// file, the environment, the command-line arguments and the JSON file, in
// that order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
