// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

// Filters and ordering of every paginated endpoint.
var (
	usersSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "email", Column: "users.email", Kind: listing.Exact},
			{Param: "username", Column: "users.username", Kind: listing.Exact},
			{Param: "nickname", Column: "users.nickname", Kind: listing.Contains},
			{Param: "role", Column: "users.role", Kind: listing.ExactInt},
		},
		OrderBy: listing.IDDesc("users"),
	}

	categoriesSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "name", Column: "categories.name", Kind: listing.Contains},
		},
		OrderBy: listing.RankAsc("categories"),
	}

	coursesSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "categoryId", Column: "courses.category_id", Kind: listing.ExactInt},
			{Param: "userId", Column: "courses.user_id", Kind: listing.ExactInt},
			{Param: "name", Column: "courses.name", Kind: listing.Contains},
			{Param: "recommended", Column: "courses.recommended", Kind: listing.Boolean},
			{Param: "introductory", Column: "courses.introductory", Kind: listing.Boolean},
		},
		OrderBy: listing.IDDesc("courses"),
	}

	categoryCoursesSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "categoryId", Column: "courses.category_id", Kind: listing.ExactInt, Required: true},
		},
		OrderBy: listing.IDDesc("courses"),
	}

	searchSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "name", Column: "courses.name", Kind: listing.Contains},
		},
		OrderBy: listing.IDDesc("courses"),
	}

	chaptersSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "courseId", Column: "chapters.course_id", Kind: listing.ExactInt, Required: true},
			{Param: "title", Column: "chapters.title", Kind: listing.Contains},
		},
		OrderBy: listing.RankAsc("chapters"),
	}

	articlesSpec = listing.Spec{
		Filters: []listing.Filter{
			{Param: "title", Column: "articles.title", Kind: listing.Contains},
		},
		OrderBy: listing.IDDesc("articles"),
	}

	// likedCoursesSpec has no filters. The store orders by like id.
	likedCoursesSpec = listing.Spec{}
)

// homeSectionSize is the number of courses in each home page section.
const homeSectionSize = 10

// paginate builds the query for spec from params and runs fetch.
func paginate[T any](
	ctx context.Context,
	spec listing.Spec,
	params url.Values,
	fetch func(context.Context, listing.Query) ([]T, int64, error),
) (models.Page[T], error) {
	query, err := spec.Build(params)
	if err != nil {
		return models.Page[T]{}, err
	}

	rows, total, err := fetch(ctx, query)
	if err != nil {
		return models.Page[T]{}, err
	}

	return models.Page[T]{Rows: rows, Pagination: query.Page.Summary(total)}, nil
}

// referenceError turns a missing referenced row into a validation failure
// on field. Other errors pass through.
func referenceError(err error, field, entity string, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return validators.NewValidationError(field, fmt.Sprintf("%s with ID %d does not exist", entity, id))
	}
	return err
}
