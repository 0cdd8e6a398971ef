// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Nullable distinguishes the three states a JSON field of an update payload
// can be in: absent, explicitly null, or set to a value.
//
// Fields of this type should carry the `omitzero` json option so that an
// absent value stays absent when the payload is serialized again.
type Nullable[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// Of returns a present, non-null value.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Present: true}
}

// Null returns a present, explicitly null value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true, Null: true}
}

// IsZero reports whether the field was absent.
func (n Nullable[T]) IsZero() bool {
	return !n.Present
}

// IsSet reports whether the field carries a non-null value.
func (n Nullable[T]) IsSet() bool {
	return n.Present && !n.Null
}

// Ptr returns a pointer to the value, or nil when absent or null.
func (n Nullable[T]) Ptr() *T {
	if !n.IsSet() {
		return nil
	}
	v := n.Value
	return &v
}

// Update converts the field into the double-pointer form used by partial
// store updates: nil when absent, pointer to nil when null.
func (n Nullable[T]) Update() **T {
	if !n.Present {
		return nil
	}
	p := n.Ptr()
	return &p
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(b, &n.Value)
}

// SetNull marks the field as explicitly null.
func (n *Nullable[T]) SetNull() {
	var zero T
	n.Value = zero
	n.Present = true
	n.Null = true
}
