// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LikeRequest is the body of POST /likes.
type LikeRequest struct {
	CourseID int64 `json:"courseId"`
}

// LikeResult reports the state of the (user, course) like after a toggle.
type LikeResult struct {
	CourseID   int64 `json:"courseId"`
	Liked      bool  `json:"liked"`
	LikesCount int   `json:"likesCount"`
}
