// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not a JSON document
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	// ErrInvalidID is returned when a path identifier is not a positive
	// integer.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrNoCurrentUser is returned by handlers behind the access gate when
	// the request context carries no resolved user.
	ErrNoCurrentUser = errors.New("no current user in request context")
)
