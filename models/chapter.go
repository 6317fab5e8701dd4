// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Chapter belongs to exactly one Course and is ordered by Rank within it.
type Chapter struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Video     string    `json:"video"`
	Rank      int       `json:"rank"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Course *CourseSummary `json:"course,omitempty"`
}

// ChapterDraft carries the whitelisted writable fields of a Chapter.
type ChapterDraft struct {
	CourseID *int64  `json:"courseId"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Video    *string `json:"video"`
	Rank     *int    `json:"rank"`
}

// Apply copies every non-nil field into c.
func (d ChapterDraft) Apply(c *Chapter) {
	if d.CourseID != nil {
		c.CourseID = *d.CourseID
	}
	if d.Title != nil {
		c.Title = *d.Title
	}
	if d.Content != nil {
		c.Content = *d.Content
	}
	if d.Video != nil {
		c.Video = *d.Video
	}
	if d.Rank != nil {
		c.Rank = *d.Rank
	}
}

// ChapterDetail is the public chapter page: the chapter, its course, the
// course author and every chapter of the same course ordered by rank.
type ChapterDetail struct {
	Chapter  Chapter       `json:"chapter"`
	Course   CourseSummary `json:"course"`
	User     UserSummary   `json:"user"`
	Chapters []Chapter     `json:"chapters"`
}
