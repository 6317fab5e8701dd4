// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/course-cms/models"
)

const (
	ParamCurrentPage = "currentPage"
	ParamPageSize    = "pageSize"

	DefaultCurrentPage = 1
	DefaultPageSize    = 10

	// maxPageValue bounds both page parameters so that the offset always fits
	// into an int64.
	maxPageValue = math.MaxInt32
)

// Page is a normalised page request. Both fields are always >= 1.
type Page struct {
	CurrentPage int
	PageSize    int
}

// ParsePage reads currentPage and pageSize from values.
//
// Each value is converted to a number, truncated, made absolute and floored
// at 1. Absent or non-numeric values fall back to page 1 and page size 10.
func ParsePage(values url.Values) Page {
	return Page{
		CurrentPage: parsePageValue(values.Get(ParamCurrentPage), DefaultCurrentPage),
		PageSize:    parsePageValue(values.Get(ParamPageSize), DefaultPageSize),
	}
}

// NewPage builds a normalised Page from already-numeric values.
func NewPage(currentPage, pageSize int) Page {
	return Page{
		CurrentPage: normalise(float64(currentPage)),
		PageSize:    normalise(float64(pageSize)),
	}
}

// Offset is the number of rows skipped before the page starts.
func (p Page) Offset() uint64 {
	return uint64(p.CurrentPage-1) * uint64(p.PageSize)
}

// Limit is the maximum number of rows on the page.
func (p Page) Limit() uint64 {
	return uint64(p.PageSize)
}

// Summary builds the pagination block returned next to a page of rows.
func (p Page) Summary(total int64) models.Pagination {
	return models.Pagination{
		Total:       total,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
	}
}

func parsePageValue(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}

	return normalise(f)
}

func normalise(f float64) int {
	f = math.Trunc(math.Abs(f))
	if f < 1 {
		return 1
	}
	if f > maxPageValue {
		return maxPageValue
	}
	return int(f)
}
