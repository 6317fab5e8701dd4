// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.LikeRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.LikeService.ToggleLike(r.Context(), actor, request.CourseID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "course liked"
	if !result.Liked {
		message = "like removed"
	}
	writeSuccess(w, r, http.StatusOK, message, result)
}

func (h *Handler) likedCourses(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.LikeService.LikedCourses(r.Context(), actor, r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "liked courses fetched", "courses", page)
}
