// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// collector accumulates violations, honouring an optional field scope.
type collector struct {
	scope      []string
	violations ValidationErrors
}

func newCollector(fields []string) *collector {
	return &collector{scope: fields}
}

func (c *collector) inScope(field string) bool {
	return len(c.scope) == 0 || slices.Contains(c.scope, field)
}

func (c *collector) add(field, message string) {
	c.violations = append(c.violations, Violation{Field: field, Message: message})
}

// required checks a mandatory string with a rune-length range.
func (c *collector) required(field, value string, min, max int) {
	if !c.inScope(field) {
		return
	}
	if value == "" {
		c.add(field, fmt.Sprintf("%s is required", field))
		return
	}
	if validate.Var(value, fmt.Sprintf("min=%d,max=%d", min, max)) != nil {
		c.add(field, fmt.Sprintf("%s must be between %d and %d characters", field, min, max))
	}
}

func (c *collector) email(field, value string) {
	if !c.inScope(field) || value == "" {
		return
	}
	if validate.Var(value, "email") != nil {
		c.add(field, fmt.Sprintf("%s is not a valid email address", field))
	}
}

// optionalURL accepts an empty value.
func (c *collector) optionalURL(field, value string) {
	if !c.inScope(field) || value == "" {
		return
	}
	if validate.Var(value, "url") != nil {
		c.add(field, fmt.Sprintf("%s must be a valid URL", field))
	}
}

func (c *collector) positiveID(field string, value int64) {
	if !c.inScope(field) {
		return
	}
	if value <= 0 {
		c.add(field, fmt.Sprintf("%s is required", field))
	}
}

func (c *collector) positive(field string, value int) {
	if !c.inScope(field) {
		return
	}
	if validate.Var(value, "gt=0") != nil {
		c.add(field, fmt.Sprintf("%s must be a positive integer", field))
	}
}

func (c *collector) oneOf(field string, value int, allowed string) {
	if !c.inScope(field) {
		return
	}
	if validate.Var(value, "oneof="+allowed) != nil {
		c.add(field, fmt.Sprintf("%s must be one of %s", field, allowed))
	}
}
