// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "absent", query: "", wantPage: 1, wantSize: 10},
		{name: "explicit", query: "currentPage=3&pageSize=25", wantPage: 3, wantSize: 25},
		{name: "zero and negative", query: "currentPage=0&pageSize=-5", wantPage: 1, wantSize: 5},
		{name: "zero page size floors at one", query: "pageSize=0", wantPage: 1, wantSize: 1},
		{name: "negative page", query: "currentPage=-4", wantPage: 4, wantSize: 10},
		{name: "non-numeric", query: "currentPage=abc&pageSize=xyz", wantPage: 1, wantSize: 10},
		{name: "fraction truncated", query: "currentPage=2.9&pageSize=7.2", wantPage: 2, wantSize: 7},
		{name: "fraction below one", query: "currentPage=0.5", wantPage: 1, wantSize: 10},
		{name: "surrounding spaces", query: "currentPage=%202%20", wantPage: 2, wantSize: 10},
		{name: "infinity", query: "pageSize=Inf", wantPage: 1, wantSize: 10},
		{name: "huge values clamp", query: "currentPage=1e30&pageSize=1e30", wantPage: maxPageValue, wantSize: maxPageValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			page := ParsePage(values)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantSize, page.PageSize)
		})
	}
}

func TestPage_OffsetAndLimit(t *testing.T) {
	page := Page{CurrentPage: 3, PageSize: 20}
	assert.Equal(t, uint64(40), page.Offset())
	assert.Equal(t, uint64(20), page.Limit())

	first := Page{CurrentPage: 1, PageSize: 10}
	assert.Equal(t, uint64(0), first.Offset())

	largest := Page{CurrentPage: maxPageValue, PageSize: maxPageValue}
	assert.Equal(t, uint64(maxPageValue-1)*uint64(maxPageValue), largest.Offset())
}

func TestPage_Summary(t *testing.T) {
	summary := Page{CurrentPage: 9999, PageSize: 10}.Summary(3)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, 9999, summary.CurrentPage)
	assert.Equal(t, 10, summary.PageSize)
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{CurrentPage: 1, PageSize: 5}, NewPage(0, -5))
	assert.Equal(t, Page{CurrentPage: 2, PageSize: 10}, NewPage(2, 10))
}
