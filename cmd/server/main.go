// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/handler"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/server"
	"github.com/MKhiriev/course-cms/internal/service"
	"github.com/MKhiriev/course-cms/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	version := buildVersion
	printBuildInfo()

	log := logger.NewLogger("course-cms-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if version != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = version
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Bool("cache", cfg.Cache.RedisAddress != "").
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	c, err := cache.NewCache(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to cache")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), c, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminEmail != "" {
		if err = services.UserService.EnsureAdministrator(ctx, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("error creating administrator")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
