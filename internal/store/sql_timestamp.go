// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestamp scans a time column whatever form the driver delivers it in.
// go-sqlite3 only converts to time.Time when the column has a declared
// type, which RETURNING and expression columns lack.
type timestamp struct {
	dest *time.Time
}

func ts(dest *time.Time) sql.Scanner {
	return timestamp{dest: dest}
}

func (t timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dest = time.Time{}
		return nil
	case time.Time:
		*t.dest = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t timestamp) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t.dest = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", s)
}
