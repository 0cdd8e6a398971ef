// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"reflect"
	"strings"
)

// UnknownFieldPolicy controls what happens to payload keys that do not
// match any field of the schema.
type UnknownFieldPolicy int

const (
	// StripUnknown silently drops unknown keys.
	StripUnknown UnknownFieldPolicy = iota
	// RejectUnknown reports every unknown key as an issue.
	RejectUnknown
)

// Refinement is a whole-payload rule evaluated after all fields passed
// their structural checks. It receives a pointer to the schema's target
// struct and returns the violated rules, if any.
type Refinement func(payload any) []Issue

// field describes one JSON-visible field of a schema target.
type field struct {
	name     string
	index    int
	typ      reflect.Type
	nullable bool
}

// Schema is a named, reusable validation contract over a Go struct type.
//
// Schemas are immutable after construction and safe for concurrent use.
type Schema struct {
	name   string
	target reflect.Type

	fields  map[string]field
	ordered []string

	coercions   map[string][]Coercion
	defaults    map[string]any
	refinements []Refinement
	unknown     UnknownFieldPolicy
}

// SchemaOption configures a [Schema] at construction time.
type SchemaOption func(*Schema)

// Coerce declares the coercions applied to the named field before
// validation. Repeated calls for the same field accumulate.
func Coerce(fieldName string, cs ...Coercion) SchemaOption {
	return func(s *Schema) {
		s.coercions[fieldName] = orderCoercions(append(s.coercions[fieldName], cs...))
	}
}

// Default sets the raw value used for the named field when it is absent
// from the payload. Defaults are applied after coercions, so an explicit
// null or an empty string turned into null is not replaced.
func Default(fieldName string, value any) SchemaOption {
	return func(s *Schema) {
		s.defaults[fieldName] = value
	}
}

// WithUnknownFields sets the unknown-key policy. The default is
// [StripUnknown].
func WithUnknownFields(p UnknownFieldPolicy) SchemaOption {
	return func(s *Schema) {
		s.unknown = p
	}
}

// Refine appends a typed whole-payload rule.
func Refine[T any](fn func(*T) []Issue) SchemaOption {
	return func(s *Schema) {
		s.refinements = append(s.refinements, func(payload any) []Issue {
			typed, ok := payload.(*T)
			if !ok {
				return nil
			}
			return fn(typed)
		})
	}
}

// NewSchema declares a schema named name over the struct type T. Field
// names are taken from the `json` struct tags.
//
// NewSchema panics if T is not a struct or an option names a field that T
// does not have; schemas are declared once at package initialization.
func NewSchema[T any](name string, opts ...SchemaOption) *Schema {
	s, err := newSchema(name, reflect.TypeFor[T](), opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSchema(name string, target reflect.Type, opts ...SchemaOption) (*Schema, error) {
	if target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is %s", ErrInvalidSchemaTarget, name, target.Kind())
	}

	s := &Schema{
		name:      name,
		target:    target,
		fields:    make(map[string]field),
		coercions: make(map[string][]Coercion),
		defaults:  make(map[string]any),
	}

	for i := 0; i < target.NumField(); i++ {
		sf := target.Field(i)
		if !sf.IsExported() {
			continue
		}
		jsonName := jsonFieldName(sf)
		if jsonName == "" {
			continue
		}
		s.fields[jsonName] = field{
			name:     jsonName,
			index:    i,
			typ:      sf.Type,
			nullable: reflect.PointerTo(sf.Type).Implements(nullSetterType),
		}
		s.ordered = append(s.ordered, jsonName)
	}

	for _, opt := range opts {
		opt(s)
	}

	for fieldName := range s.coercions {
		if _, ok := s.fields[fieldName]; !ok {
			return nil, fmt.Errorf("schema %s: coercion for unknown field %q", name, fieldName)
		}
	}
	for fieldName := range s.defaults {
		if _, ok := s.fields[fieldName]; !ok {
			return nil, fmt.Errorf("schema %s: default for unknown field %q", name, fieldName)
		}
	}

	return s, nil
}

// Name returns the schema's catalog name.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the JSON names of the schema's fields in declaration
// order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// jsonFieldName returns the wire name of sf, or "" when the field is not
// serialized.
func jsonFieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// nullSetter is implemented by field types that can represent an explicit
// null (see models.Nullable).
type nullSetter interface {
	SetNull()
}

var nullSetterType = reflect.TypeFor[nullSetter]()
