// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/service"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation errors", validators.NewValidationError("name", "name is required"), http.StatusBadRequest},
		{"invalid data", fmt.Errorf("%w: login is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid json", errors.Join(ErrInvalidJSON, errors.New("EOF")), http.StatusBadRequest},
		{"invalid id", ErrInvalidID, http.StatusBadRequest},
		{"missing filter", fmt.Errorf("%w: categoryId", listing.ErrMissingFilter), http.StatusBadRequest},
		{"invalid filter value", fmt.Errorf("%w: role", listing.ErrInvalidFilterValue), http.StatusBadRequest},
		{"duplicate", fmt.Errorf("%w: users", store.ErrAlreadyExists), http.StatusBadRequest},
		{"reference violation", fmt.Errorf("%w: courses", store.ErrReferenceViolation), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"no token", service.ErrAuthenticationRequired, http.StatusUnauthorized},
		{"deleted identity", service.ErrIdentityNoLongerExists, http.StatusUnauthorized},
		{"malformed header", ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"entity not found", fmt.Errorf("loading: %w", store.ErrCategoryNotFound), http.StatusNotFound},
		{"dependents", &store.DependentsError{Count: 3}, http.StatusConflict},
		{"sql failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("boom")), http.StatusInternalServerError},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{"unknown", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, sentinel := statusFromError(tt.err)
			assert.Equal(t, tt.expected, status)
			if status < http.StatusInternalServerError {
				assert.ErrorIs(t, tt.err, sentinel)
			}
		})
	}
}
