// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownSchema is returned when a payload is validated against a
	// schema name that is not registered in the catalog.
	ErrUnknownSchema = errors.New("unknown validation schema")

	// ErrInvalidSchemaTarget is returned when a schema is declared over a
	// type that is not a struct.
	ErrInvalidSchemaTarget = errors.New("schema target must be a struct")
)

// Issue describes a single violated rule.
type Issue struct {
	// Path is the JSON path of the offending field (e.g. "email",
	// "options[2]"). An empty path refers to the payload as a whole.
	Path string `json:"path"`

	// Message is a human-readable description of the violation.
	Message string `json:"message"`
}

// ValidationError is returned by the pipeline when a payload violates its
// schema. It carries one [Issue] per violated field.
type ValidationError struct {
	Schema string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasPath reports whether any issue points at path.
func (e *ValidationError) HasPath(path string) bool {
	for _, issue := range e.Issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
