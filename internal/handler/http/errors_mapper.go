// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/service"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidID:                  http.StatusBadRequest,
	ErrInvalidGzipBody:            http.StatusBadRequest,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoCurrentUser:              http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAuthenticationRequired:  http.StatusUnauthorized,
	service.ErrIdentityNoLongerExists:  http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	validators.ErrValidationFailed: http.StatusBadRequest,
	listing.ErrMissingFilter:       http.StatusBadRequest,
	listing.ErrInvalidFilterValue:  http.StatusBadRequest,

	store.ErrNotFound:           http.StatusNotFound,
	store.ErrAlreadyExists:      http.StatusBadRequest,
	store.ErrReferenceViolation: http.StatusBadRequest,
	store.ErrHasDependents:      http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError returns the HTTP status for err together with the sentinel
// it matched. Unknown errors map to 500 and a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}
