// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the validation pipeline that shapes and
// rejects untrusted request payloads before they reach business logic.
//
// Every payload is processed against a [Schema] in three ordered steps:
//  1. normalization: declared coercions and defaults are applied to the raw
//     JSON object (see [Coercion] for precedence);
//  2. structural checks: each field is decoded into its Go type and checked
//     against its `validate` struct tag by go-playground/validator;
//  3. refinements: whole-payload rules that depend on several fields.
//
// Refinements only run when the first two steps found no violations. The
// result is either a normalized, typed payload or a [*ValidationError]
// listing every violated field.
package validators

import "context"

// Validator validates a raw JSON payload against a schema and returns the
// normalized payload (a pointer to the schema's target struct).
type Validator interface {
	Validate(ctx context.Context, schema *Schema, raw []byte) (any, error)
}
