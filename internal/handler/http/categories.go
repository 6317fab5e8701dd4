// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) allCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.AllCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeSuccess(w, r, http.StatusOK, "categories fetched", envelope{"categories": categories})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CategoryService.ListCategories(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "categories fetched", "categories", page)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "category fetched", envelope{"category": category})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var draft models.CategoryDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, "category created", envelope{"category": category})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var draft models.CategoryDraft
	if err = decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), id, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "category updated", envelope{"category": category})
}

// deleteCategory answers 409 while courses still belong to the category.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "category deleted", nil)
}
