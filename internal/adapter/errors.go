// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedResponse is returned when a successful response does not
	// carry the expected envelope.
	ErrUnexpectedResponse = errors.New("unexpected response")

	ErrEmptyAddress = errors.New("empty server address")
)
