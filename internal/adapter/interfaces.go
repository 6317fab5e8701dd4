// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the course-cms REST API, used by the
// admin command-line tool.
//
// [AdminAdapter] hides the transport. The HTTP implementation
// ([NewHTTPAdminAdapter]) decodes the response envelope and maps failed
// responses to the sentinel errors of this package, so callers can use
// [errors.Is] (e.g. [ErrConflict] for a blocked delete).
package adapter

import (
	"context"

	"github.com/MKhiriev/course-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AdminAdapter talks to a running course-cms server on behalf of an
// administrator.
type AdminAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)
	Token() string

	// SignIn signs in through the administrator endpoint and stores the
	// issued token.
	SignIn(ctx context.Context, credentials models.Credentials) (string, error)

	// Categories lists every category ordered by rank.
	Categories(ctx context.Context) ([]models.Category, error)

	// DeleteCategory removes a category. It fails with [ErrConflict] while
	// courses still belong to it.
	DeleteCategory(ctx context.Context, id int64) error

	// DeleteCourse removes a course. It fails with [ErrConflict] while the
	// course still has chapters.
	DeleteCourse(ctx context.Context, id int64) error

	// Version reports the server version.
	Version(ctx context.Context) (string, error)
}
