// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Pipeline is the [Validator] implementation backed by go-playground/validator.
// It is safe for concurrent use.
type Pipeline struct {
	validate *validator.Validate
}

// NewPipeline constructs a Pipeline with the custom rules and types used by
// the schema catalog registered.
func NewPipeline() *Pipeline {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		return jsonFieldName(sf)
	})

	v.RegisterCustomTypeFunc(nullableValue[string], models.Nullable[string]{})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &Pipeline{validate: v}
}

// Validate runs raw through normalization, structural checks and
// refinements of schema. On success it returns a pointer to a populated
// value of the schema's target type; on failure a [*ValidationError].
func (p *Pipeline) Validate(ctx context.Context, schema *Schema, raw []byte) (any, error) {
	log := logger.FromContext(ctx)

	if schema == nil {
		return nil, ErrUnknownSchema
	}

	object, err := decodeObject(raw)
	if err != nil {
		log.Debug().Err(err).Str("schema", schema.name).Msg("payload is not a JSON object")
		return nil, &ValidationError{Schema: schema.name, Issues: []Issue{{Message: err.Error()}}}
	}

	issues := schema.normalize(object)

	target := reflect.New(schema.target)
	issues = append(issues, schema.decodeFields(object, target.Elem())...)

	issues = append(issues, p.checkStructure(target.Interface(), issues)...)

	if len(issues) == 0 {
		for _, refine := range schema.refinements {
			issues = append(issues, refine(target.Interface())...)
		}
	}

	if len(issues) > 0 {
		sortIssues(schema, issues)
		log.Debug().Str("schema", schema.name).Any("issues", issues).Msg("payload failed validation")
		return nil, &ValidationError{Schema: schema.name, Issues: issues}
	}

	return target.Interface(), nil
}

// Validate is the typed form of [Validator.Validate].
func Validate[T any](ctx context.Context, v Validator, schema *Schema, raw []byte) (*T, error) {
	payload, err := v.Validate(ctx, schema, raw)
	if err != nil {
		return nil, err
	}
	typed, ok := payload.(*T)
	if !ok {
		return nil, fmt.Errorf("schema %s produced %T", schema.Name(), payload)
	}
	return typed, nil
}

// decodeObject parses raw as a single JSON object, keeping numbers as
// json.Number so integers survive without float rounding.
func decodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.New("malformed JSON body")
	}
	if dec.More() {
		return nil, errors.New("malformed JSON body")
	}

	object, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("expected a JSON object")
	}
	return object, nil
}

// normalize applies coercions, defaults and the unknown-field policy to
// object in place.
func (s *Schema) normalize(object map[string]any) []Issue {
	var issues []Issue

	for key := range object {
		if _, known := s.fields[key]; known {
			continue
		}
		if s.unknown == RejectUnknown {
			issues = append(issues, Issue{Path: key, Message: "unrecognized field"})
		}
		delete(object, key)
	}

	for fieldName, cs := range s.coercions {
		if v, ok := object[fieldName]; ok {
			object[fieldName] = applyCoercions(v, cs)
		}
	}

	for fieldName, def := range s.defaults {
		if _, ok := object[fieldName]; !ok {
			object[fieldName] = def
		}
	}

	return issues
}

// decodeFields decodes every present key of object into its struct field.
// A type mismatch is reported against the field and leaves it zero.
func (s *Schema) decodeFields(object map[string]any, target reflect.Value) []Issue {
	var issues []Issue

	for _, name := range s.ordered {
		v, ok := object[name]
		if !ok {
			continue
		}
		f := s.fields[name]
		dst := target.Field(f.index)

		if v == nil {
			if f.nullable {
				dst.Addr().Interface().(nullSetter).SetNull()
			}
			continue
		}

		b, err := json.Marshal(v)
		if err == nil {
			err = json.Unmarshal(b, dst.Addr().Interface())
		}
		if err != nil {
			dst.Set(reflect.Zero(f.typ))
			issues = append(issues, Issue{Path: name, Message: "expected " + describeType(f.typ)})
		}
	}

	return issues
}

// checkStructure runs go-playground/validator over payload. Fields that
// already failed decoding are not reported twice.
func (p *Pipeline) checkStructure(payload any, decodeIssues []Issue) []Issue {
	err := p.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Message: err.Error()}}
	}

	failed := make(map[string]struct{}, len(decodeIssues))
	for _, issue := range decodeIssues {
		failed[issue.Path] = struct{}{}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe)
		if _, ok := failed[topLevel(path)]; ok {
			continue
		}
		issues = append(issues, Issue{Path: path, Message: messageFor(fe)})
	}
	return issues
}

// fieldPath strips the struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func topLevel(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "slug":
		return "must contain only lowercase letters, digits and single hyphens"
	case "min":
		if isText(fe.Kind()) {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isText(fe.Kind()) {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func isText(k reflect.Kind) bool {
	return k == reflect.String
}

func describeType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return describeType(t.Elem())
	}
	if reflect.PointerTo(t).Implements(nullSetterType) && t.Kind() == reflect.Struct && t.NumField() > 0 {
		return describeType(t.Field(0).Type)
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array of " + describeType(t.Elem()) + "s"
	default:
		return "object"
	}
}

// sortIssues orders issues by the schema's field order so responses are
// deterministic. Whole-payload issues come first.
func sortIssues(s *Schema, issues []Issue) {
	rank := make(map[string]int, len(s.ordered))
	for i, name := range s.ordered {
		rank[name] = i + 1
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return rank[topLevel(issues[i].Path)] < rank[topLevel(issues[j].Path)]
	})
}

// nullableValue exposes the inner value of a models.Nullable to the
// validator; absent and null values are reported as nil so that
// `omitempty` skips them.
func nullableValue[T any](v reflect.Value) any {
	n, ok := v.Interface().(models.Nullable[T])
	if !ok || !n.IsSet() {
		return nil
	}
	return n.Value
}
