// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.services.SettingService.GetSetting(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "setting fetched", envelope{"setting": setting})
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	var draft models.SettingDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	setting, err := h.services.SettingService.UpdateSetting(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "setting updated", envelope{"setting": setting})
}
