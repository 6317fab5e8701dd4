// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by course-cms.
package handler

import (
	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/handler/http"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds a handler for every transport that has an address in
// cfg. At least one transport must be configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
