// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node of the product category tree.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CategoryUpdate is a partial update of a category. Nil fields are left
// untouched; for nullable columns a pointer to nil clears the value.
type CategoryUpdate struct {
	ID uuid.UUID

	Name        *string
	Slug        *string
	Description **string
	ParentID    **uuid.UUID
	IsActive    *bool
	SortOrder   *int
}

// IsEmpty reports whether the update carries no changes.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Slug == nil && u.Description == nil &&
		u.ParentID == nil && u.IsActive == nil && u.SortOrder == nil
}
