// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateCategoryRequest is the category-create payload.
type CreateCategoryRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Slug        *string          `json:"slug,omitempty" validate:"omitnil,max=120,slug"`
	Description Nullable[string] `json:"description,omitzero" validate:"omitempty,max=1000"`
	ParentID    Nullable[string] `json:"parentId,omitzero" validate:"omitempty,uuid"`
	IsActive    *bool            `json:"isActive,omitempty"`
	SortOrder   *int             `json:"sortOrder,omitempty" validate:"omitnil,min=0,max=100000"`
}

// UpdateCategoryRequest is the category-update payload: the fields of
// [CreateCategoryRequest], all optional.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Slug        *string          `json:"slug,omitempty" validate:"omitnil,max=120,slug"`
	Description Nullable[string] `json:"description,omitzero" validate:"omitempty,max=1000"`
	ParentID    Nullable[string] `json:"parentId,omitzero" validate:"omitempty,uuid"`
	IsActive    *bool            `json:"isActive,omitempty"`
	SortOrder   *int             `json:"sortOrder,omitempty" validate:"omitnil,min=0,max=100000"`
}

// CreateAttributeRequest is the attribute-create payload.
type CreateAttributeRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Type         string   `json:"type" validate:"required,oneof=TEXT NUMBER BOOLEAN SELECT MULTISELECT"`
	CategoryID   string   `json:"categoryId" validate:"required,uuid"`
	IsRequired   *bool    `json:"isRequired,omitempty"`
	IsFilterable *bool    `json:"isFilterable,omitempty"`
	Options      []string `json:"options,omitempty" validate:"omitempty,max=100,dive,required,max=100"`
}

// UpdateAttributeRequest is the attribute-update payload.
type UpdateAttributeRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Type         *string  `json:"type,omitempty" validate:"omitnil,oneof=TEXT NUMBER BOOLEAN SELECT MULTISELECT"`
	CategoryID   *string  `json:"categoryId,omitempty" validate:"omitnil,uuid"`
	IsRequired   *bool    `json:"isRequired,omitempty"`
	IsFilterable *bool    `json:"isFilterable,omitempty"`
	Options      []string `json:"options,omitempty" validate:"omitempty,max=100,dive,required,max=100"`
}
