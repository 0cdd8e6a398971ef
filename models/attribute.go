// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Attribute types. SELECT and MULTISELECT attributes carry a fixed list of
// options.
const (
	AttributeTypeText        = "TEXT"
	AttributeTypeNumber      = "NUMBER"
	AttributeTypeBoolean     = "BOOLEAN"
	AttributeTypeSelect      = "SELECT"
	AttributeTypeMultiSelect = "MULTISELECT"
)

// AttributeTypeHasOptions reports whether attributes of type t require a
// list of options.
func AttributeTypeHasOptions(t string) bool {
	return t == AttributeTypeSelect || t == AttributeTypeMultiSelect
}

// Attribute is a product attribute definition bound to a category.
type Attribute struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CategoryID   uuid.UUID `json:"categoryId"`
	IsRequired   bool      `json:"isRequired"`
	IsFilterable bool      `json:"isFilterable"`
	Options      []string  `json:"options,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AttributeUpdate struct {
	ID uuid.UUID

	Name         *string
	Type         *string
	CategoryID   *uuid.UUID
	IsRequired   *bool
	IsFilterable *bool
	Options      *[]string
}

func (u AttributeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.CategoryID == nil &&
		u.IsRequired == nil && u.IsFilterable == nil && u.Options == nil
}
