// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Article is a standalone piece of content outside the course hierarchy.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleDraft carries the whitelisted writable fields of an Article.
type ArticleDraft struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Apply copies every non-nil field into a.
func (d ArticleDraft) Apply(a *Article) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.Content != nil {
		a.Content = *d.Content
	}
}
