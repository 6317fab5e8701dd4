// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

// listArticles and getArticle serve both the public and the admin routes.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.ArticleService.ListArticles(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, "articles fetched", "articles", page)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.GetArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "article fetched", envelope{"article": article})
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var draft models.ArticleDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.CreateArticle(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, "article created", envelope{"article": article})
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var draft models.ArticleDraft
	if err = decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.UpdateArticle(r.Context(), id, draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "article updated", envelope{"article": article})
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ArticleService.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "article deleted", nil)
}
