// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category groups courses. Rank drives display order.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategorySummary is the projection embedded into courses.
type CategorySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryDraft carries the whitelisted writable fields of a Category.
type CategoryDraft struct {
	Name *string `json:"name"`
	Rank *int    `json:"rank"`
}

// Apply copies every non-nil field into c.
func (d CategoryDraft) Apply(c *Category) {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Rank != nil {
		c.Rank = *d.Rank
	}
}
