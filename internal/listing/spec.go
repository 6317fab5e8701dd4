// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind selects how a filter parameter becomes a predicate.
type Kind int

const (
	// Exact compares the raw string for equality.
	Exact Kind = iota
	// ExactInt parses the value as an integer and compares for equality.
	ExactInt
	// Contains matches rows whose column contains the value as a
	// case-sensitive substring.
	Contains
	// Boolean compares against true when the value is exactly "true" and
	// against false otherwise.
	Boolean
)

// Op is the comparison a predicate performs.
type Op int

const (
	OpEq Op = iota
	OpContains
)

// Filter binds a query-string parameter to a column.
type Filter struct {
	Param    string
	Column   string
	Kind     Kind
	Required bool
}

// Predicate is a single condition on a column. All predicates of a Query are
// conjoined.
type Predicate struct {
	Column string
	Op     Op
	Value  any
}

// Spec declares the recognised filters and the ordering of one listing.
type Spec struct {
	Filters []Filter
	OrderBy []string
}

// Query is the fetch description executed by the store.
type Query struct {
	Page       Page
	Predicates []Predicate
	OrderBy    []string
}

// Build normalises the page parameters and turns every recognised, non-empty
// filter parameter into a predicate. Unrecognised parameters are ignored.
//
// It fails with [ErrMissingFilter] when a required filter is absent and with
// [ErrInvalidFilterValue] when an ExactInt value is not an integer.
func (s Spec) Build(values url.Values) (Query, error) {
	query := Query{
		Page:    ParsePage(values),
		OrderBy: s.OrderBy,
	}

	for _, filter := range s.Filters {
		raw := values.Get(filter.Param)
		if raw == "" {
			if filter.Required {
				return Query{}, fmt.Errorf("%w: %s", ErrMissingFilter, filter.Param)
			}
			continue
		}

		predicate, err := filter.predicate(raw)
		if err != nil {
			return Query{}, err
		}
		query.Predicates = append(query.Predicates, predicate)
	}

	return query, nil
}

func (f Filter) predicate(raw string) (Predicate, error) {
	switch f.Kind {
	case ExactInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Predicate{}, fmt.Errorf("%w: %s must be an integer", ErrInvalidFilterValue, f.Param)
		}
		return Predicate{Column: f.Column, Op: OpEq, Value: n}, nil
	case Contains:
		return Predicate{Column: f.Column, Op: OpContains, Value: raw}, nil
	case Boolean:
		return Predicate{Column: f.Column, Op: OpEq, Value: raw == "true"}, nil
	default:
		return Predicate{Column: f.Column, Op: OpEq, Value: raw}, nil
	}
}

// Where appends an equality predicate to q, for callers that scope a
// listing by a value that does not come from the query string.
func (q Query) Where(column string, value any) Query {
	predicates := make([]Predicate, 0, len(q.Predicates)+1)
	predicates = append(predicates, q.Predicates...)
	q.Predicates = append(predicates, Predicate{Column: column, Op: OpEq, Value: value})
	return q
}

// IDDesc orders by table.id descending. It is the default ordering.
func IDDesc(table string) []string {
	return []string{table + ".id DESC"}
}

// RankAsc orders by table.rank ascending with table.id ascending as the
// tie-breaker.
func RankAsc(table string) []string {
	return []string{table + ".rank ASC", table + ".id ASC"}
}
