// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed is matched by every [ValidationErrors] value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedType is returned when Validate receives a value it has no
	// rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Violation is a single broken constraint.
type Violation struct {
	Field   string
	Message string
}

// ValidationErrors lists every constraint a record violates.
type ValidationErrors []Violation

// Error joins all violation messages.
func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any ValidationErrors.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Messages returns the human-readable message of every violation.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, violation.Message)
	}
	return messages
}

// NewValidationError builds a single-violation error. Services use it for
// referential checks that depend on the store.
func NewValidationError(field, message string) error {
	return ValidationErrors{{Field: field, Message: message}}
}

// orNil returns nil when no violation was collected.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Join merges the violations of every ValidationErrors in errs. Any other
// non-nil error is returned as is.
func Join(errs ...error) error {
	var joined ValidationErrors
	for _, err := range errs {
		if err == nil {
			continue
		}
		var violations ValidationErrors
		if !errors.As(err, &violations) {
			return err
		}
		joined = append(joined, violations...)
	}
	return joined.orNil()
}
