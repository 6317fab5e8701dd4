// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Course belongs to exactly one Category and one authoring User and owns
// zero or more Chapters. LikesCount and ChaptersCount are cached counters
// maintained by the store.
type Course struct {
	ID            int64     `json:"id"`
	CategoryID    int64     `json:"categoryId"`
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	Recommended   bool      `json:"recommended"`
	Introductory  bool      `json:"introductory"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likesCount"`
	ChaptersCount int       `json:"chaptersCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Category *CategorySummary `json:"category,omitempty"`
	User     *UserSummary     `json:"user,omitempty"`
}

// CourseSummary is the projection embedded into chapters.
type CourseSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"userId,omitempty"`
}

// CourseDraft carries the whitelisted writable fields of a Course.
type CourseDraft struct {
	CategoryID   *int64  `json:"categoryId"`
	UserID       *int64  `json:"userId"`
	Name         *string `json:"name"`
	Image        *string `json:"image"`
	Recommended  *bool   `json:"recommended"`
	Introductory *bool   `json:"introductory"`
	Content      *string `json:"content"`
}

// Apply copies every non-nil field into c.
func (d CourseDraft) Apply(c *Course) {
	if d.CategoryID != nil {
		c.CategoryID = *d.CategoryID
	}
	if d.UserID != nil {
		c.UserID = *d.UserID
	}
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Image != nil {
		c.Image = *d.Image
	}
	if d.Recommended != nil {
		c.Recommended = *d.Recommended
	}
	if d.Introductory != nil {
		c.Introductory = *d.Introductory
	}
	if d.Content != nil {
		c.Content = *d.Content
	}
}

// CourseDetail is the public course page: the course with its category,
// author and chapter list.
type CourseDetail struct {
	Course   Course    `json:"course"`
	Chapters []Chapter `json:"chapters"`
}

// Home is the landing page payload.
type Home struct {
	RecommendedCourses  []Course `json:"recommendedCourses"`
	LikesCourses        []Course `json:"likesCourses"`
	IntroductoryCourses []Course `json:"introductoryCourses"`
}
