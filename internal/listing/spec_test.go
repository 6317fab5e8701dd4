// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseSpec = Spec{
	Filters: []Filter{
		{Param: "categoryId", Column: "courses.category_id", Kind: ExactInt},
		{Param: "name", Column: "courses.name", Kind: Contains},
		{Param: "recommended", Column: "courses.recommended", Kind: Boolean},
		{Param: "email", Column: "users.email", Kind: Exact},
	},
	OrderBy: IDDesc("courses"),
}

func TestSpec_Build_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    []Predicate
		wantErr error
	}{
		{
			name:  "no filters",
			query: "currentPage=2",
			want:  nil,
		},
		{
			name:  "all filters conjoined in declaration order",
			query: "recommended=true&name=Java&categoryId=4&email=a@b.c",
			want: []Predicate{
				{Column: "courses.category_id", Op: OpEq, Value: int64(4)},
				{Column: "courses.name", Op: OpContains, Value: "Java"},
				{Column: "courses.recommended", Op: OpEq, Value: true},
				{Column: "users.email", Op: OpEq, Value: "a@b.c"},
			},
		},
		{
			name:  "boolean other than true is false",
			query: "recommended=TRUE",
			want:  []Predicate{{Column: "courses.recommended", Op: OpEq, Value: false}},
		},
		{
			name:  "empty values are skipped",
			query: "name=&categoryId=",
			want:  nil,
		},
		{
			name:  "contains keeps surrounding spaces",
			query: "name=Java+",
			want:  []Predicate{{Column: "courses.name", Op: OpContains, Value: "Java "}},
		},
		{
			name:  "whitespace-only contains value still filters",
			query: "name=%20",
			want:  []Predicate{{Column: "courses.name", Op: OpContains, Value: " "}},
		},
		{
			name:  "integer value tolerates padding",
			query: "categoryId=+4+",
			want:  []Predicate{{Column: "courses.category_id", Op: OpEq, Value: int64(4)}},
		},
		{
			name:  "unknown parameters ignored",
			query: "password=x&1=1&drop=table",
			want:  nil,
		},
		{
			name:    "non-integer id",
			query:   "categoryId=abc",
			wantErr: ErrInvalidFilterValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			query, err := courseSpec.Build(values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, query.Predicates)
			assert.Equal(t, []string{"courses.id DESC"}, query.OrderBy)
		})
	}
}

func TestSpec_Build_RequiredFilter(t *testing.T) {
	spec := Spec{
		Filters: []Filter{{Param: "courseId", Column: "chapters.course_id", Kind: ExactInt, Required: true}},
		OrderBy: RankAsc("chapters"),
	}

	_, err := spec.Build(url.Values{})
	require.ErrorIs(t, err, ErrMissingFilter)
	assert.Contains(t, err.Error(), "courseId")

	query, err := spec.Build(url.Values{"courseId": {"3"}, "pageSize": {"-5"}, "currentPage": {"0"}})
	require.NoError(t, err)
	assert.Equal(t, Page{CurrentPage: 1, PageSize: 5}, query.Page)
	assert.Equal(t, []string{"chapters.rank ASC", "chapters.id ASC"}, query.OrderBy)
}

func TestQuery_Where(t *testing.T) {
	base := Query{Predicates: []Predicate{{Column: "a", Op: OpEq, Value: 1}}}

	scoped := base.Where("b", int64(2))

	assert.Len(t, base.Predicates, 1)
	assert.Equal(t, []Predicate{
		{Column: "a", Op: OpEq, Value: 1},
		{Column: "b", Op: OpEq, Value: int64(2)},
	}, scoped.Predicates)
}
