// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pagination summarises a listing: the number of rows matching the filters
// regardless of page bounds, and the normalised page parameters.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// Page is one page of a listing with its pagination summary.
type Page[T any] struct {
	Rows       []T
	Pagination Pagination
}
