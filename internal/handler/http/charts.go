// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) sexCount(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.ChartService.SexCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if counts == nil {
		counts = []models.SexCount{}
	}
	writeSuccess(w, r, http.StatusOK, "chart fetched", envelope{"sexCount": counts})
}

// userCount reports registrations per month.
func (h *Handler) userCount(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.ChartService.UserCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if counts == nil {
		counts = []models.MonthCount{}
	}
	writeSuccess(w, r, http.StatusOK, "chart fetched", envelope{"userCount": counts})
}
