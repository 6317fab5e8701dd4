// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/migrations"
)

// Dialect names the SQL flavour of a connection. Its value is also the
// database/sql driver name.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

func (d Dialect) placeholders() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (d Dialect) classifier() ErrorClassificator {
	if d == DialectPostgres {
		return NewPostgresErrorClassifier()
	}
	return NewSQLiteErrorClassifier()
}

// contains is a case-sensitive substring match. LIKE is avoided so that
// '%' and '_' in user input match literally.
func (d Dialect) contains(column string, value any) sq.Sqlizer {
	if d == DialectPostgres {
		return sq.Expr("strpos("+column+", ?) > 0", value)
	}
	return sq.Expr("instr("+column+", ?) > 0", value)
}

// month formats a timestamp column as YYYY-MM.
func (d Dialect) month(column string) string {
	if d == DialectPostgres {
		return "to_char(" + column + ", 'YYYY-MM')"
	}
	return "strftime('%Y-%m', " + column + ")"
}

// lockForUpdate appends a row lock where the dialect has one. SQLite
// serialises writers on its own.
func (d Dialect) lockForUpdate(b sq.SelectBuilder) sq.SelectBuilder {
	if d == DialectPostgres {
		return b.Suffix("FOR UPDATE")
	}
	return b
}
