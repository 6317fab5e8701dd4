// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listing

import "errors"

var (
	// ErrMissingFilter is returned by [Spec.Build] when a filter marked as
	// required is absent or empty.
	ErrMissingFilter = errors.New("required filter is missing")

	// ErrInvalidFilterValue is returned by [Spec.Build] when a filter value
	// cannot be converted to the column type.
	ErrInvalidFilterValue = errors.New("invalid filter value")
)
