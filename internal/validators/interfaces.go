// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides standalone field validation for entities
// before they are written to the store.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the list of violated constraints, matched with
//     errors.Is(err, ErrValidationFailed).
//
// Validation is a pure function of the record: it never consults the store.
// Referential checks (does category 7 exist?) are the services' job.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
