// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

// envelope is a shorthand for the object carried in the data field.
type envelope map[string]any

// writeSuccess answers with a successful envelope.
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	response := models.Response{
		Status:  true,
		Message: message,
		Data:    data,
	}
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with a failed envelope whose status is derived from err.
//
// Validation failures list every violation in the errors field. Other client
// errors carry the error text; server errors are logged and answered with a
// generic message so no internal detail leaks.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, sentinel := statusFromError(err)

	response := models.Response{Status: false}

	var violations validators.ValidationErrors
	var dependents *store.DependentsError
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error occurred")
		response.Message = http.StatusText(http.StatusInternalServerError)
	case errors.As(err, &violations):
		log.Debug().Err(err).Msg("validation failed")
		response.Message = validators.ErrValidationFailed.Error()
		response.Errors = violations.Messages()
	case errors.As(err, &dependents):
		log.Info().Err(err).Msg("delete blocked by dependent records")
		response.Message = dependents.Error()
		response.Errors = []string{dependents.Error()}
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		response.Message = sentinel.Error()
		response.Errors = []string{err.Error()}
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}

// decodeJSON reads the request body into dst. Fields dst does not declare
// are dropped.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// currentUser returns the actor resolved by the access gate.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoCurrentUser
	}
	return user, nil
}

// writePage answers with one page of a listing under key, next to its
// pagination summary. An empty page is encoded as an empty array.
func writePage[T any](w http.ResponseWriter, r *http.Request, message, key string, page models.Page[T]) {
	rows := page.Rows
	if rows == nil {
		rows = []T{}
	}
	writeSuccess(w, r, http.StatusOK, message, envelope{
		key:          rows,
		"pagination": page.Pagination,
	})
}
