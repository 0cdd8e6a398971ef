// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"
)

// Coercion is a pre-validation transformation applied to a single raw field
// value.
//
// Coercions declared on a field always run in the order of their constants
// below, whatever order they were declared in:
//
//	Trim → Lowercase → EmptyToNull → StringToBool → StringToInt
//
// so whitespace is removed before emptiness is judged and an empty string
// becomes null before any type conversion is attempted. A coercion that does
// not apply to a value leaves it untouched, and every coercion is
// idempotent: applying the chain to an already-normalized value returns the
// same value.
type Coercion int

const (
	// Trim strips leading and trailing white space from strings.
	Trim Coercion = iota
	// Lowercase lowercases strings.
	Lowercase
	// EmptyToNull turns "" into null.
	EmptyToNull
	// StringToBool turns "true"/"false" (any case) into booleans.
	StringToBool
	// StringToInt turns decimal integer strings into numbers.
	StringToInt
)

var integerPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

func (c Coercion) String() string {
	switch c {
	case Trim:
		return "trim"
	case Lowercase:
		return "lowercase"
	case EmptyToNull:
		return "empty-to-null"
	case StringToBool:
		return "string-to-bool"
	case StringToInt:
		return "string-to-int"
	default:
		return "unknown"
	}
}

func (c Coercion) apply(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	switch c {
	case Trim:
		return strings.TrimSpace(s)
	case Lowercase:
		return strings.ToLower(s)
	case EmptyToNull:
		if s == "" {
			return nil
		}
	case StringToBool:
		switch strings.ToLower(s) {
		case "true":
			return true
		case "false":
			return false
		}
	case StringToInt:
		if integerPattern.MatchString(s) {
			return json.Number(s)
		}
	}

	return v
}

// orderCoercions returns a sorted, de-duplicated copy of cs.
func orderCoercions(cs []Coercion) []Coercion {
	out := slices.Clone(cs)
	slices.Sort(out)
	return slices.Compact(out)
}

// applyCoercions runs the ordered chain over v.
func applyCoercions(v any, cs []Coercion) any {
	for _, c := range cs {
		v = c.apply(v)
	}
	return v
}
