// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SexCount is one slice of the users-by-sex chart.
type SexCount struct {
	Sex   Sex   `json:"sex"`
	Value int64 `json:"value"`
}

// MonthCount is one point of the registrations-per-month chart.
// Month is formatted as YYYY-MM.
type MonthCount struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}
