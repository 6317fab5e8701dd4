// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) chapterDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.services.ChapterService.ChapterDetail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "chapter fetched", detail)
}

func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.ChapterService.ListChapters(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "chapters fetched", "chapters", page)
}

func (h *Handler) getChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	chapter, err := h.services.ChapterService.GetChapter(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "chapter fetched", envelope{"chapter": chapter})
}

func (h *Handler) createChapter(w http.ResponseWriter, r *http.Request) {
	var draft models.ChapterDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	chapter, err := h.services.ChapterService.CreateChapter(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, "chapter created", envelope{"chapter": chapter})
}

func (h *Handler) updateChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var draft models.ChapterDraft
	if err = decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	chapter, err := h.services.ChapterService.UpdateChapter(r.Context(), id, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "chapter updated", envelope{"chapter": chapter})
}

func (h *Handler) deleteChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ChapterService.DeleteChapter(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "chapter deleted", nil)
}
