// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	home, err := h.services.CourseService.Home(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "home fetched", home)
}

func (h *Handler) courseDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.CourseService.CourseDetail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "course fetched", detail)
}

func (h *Handler) categoryCourses(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CourseService.CategoryCourses(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "courses fetched", "courses", page)
}

func (h *Handler) searchCourses(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CourseService.SearchCourses(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "courses fetched", "courses", page)
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CourseService.ListCourses(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "courses fetched", "courses", page)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "course fetched", envelope{"course": course})
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	var draft models.CourseDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, "course created", envelope{"course": course})
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var draft models.CourseDraft
	if err = decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.UpdateCourse(r.Context(), id, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "course updated", envelope{"course": course})
}

// deleteCourse answers 409 while the course still has chapters.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "course deleted", nil)
}
