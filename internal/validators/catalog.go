// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-marketplace/models"
)

// Schema catalog names.
const (
	SchemaAttributeCreate    = "attribute-create"
	SchemaAttributeUpdate    = "attribute-update"
	SchemaUserCreate         = "user-create"
	SchemaUserUpdate         = "user-update"
	SchemaUserProfileUpdate  = "user-profile-update"
	SchemaUserChangePassword = "user-change-password"
	SchemaAuthRegister       = "auth-register"
	SchemaAuthLogin          = "auth-login"
	SchemaAuthForgotPassword = "auth-forgot-password"
	SchemaAuthResetPassword  = "auth-reset-password"
	SchemaCategoryCreate     = "category-create"
	SchemaCategoryUpdate     = "category-update"
)

// shared coercion sets, so create and update variants of the same entity
// normalize identically
var (
	emailCoercion    = []Coercion{Trim, Lowercase}
	nameCoercion     = []Coercion{Trim}
	optionalCoercion = []Coercion{Trim, EmptyToNull}
	enumCoercion     = []Coercion{Trim}
	boolCoercion     = []Coercion{StringToBool}
	intCoercion      = []Coercion{Trim, StringToInt}
)

var profileFields = []string{"phone", "companyName", "streetAddress", "city", "state", "country", "zipCode"}

func coerceAll(fields []string, cs []Coercion) []SchemaOption {
	opts := make([]SchemaOption, 0, len(fields))
	for _, f := range fields {
		opts = append(opts, Coerce(f, cs...))
	}
	return opts
}

func userOptions(extra ...SchemaOption) []SchemaOption {
	opts := []SchemaOption{
		Coerce("email", emailCoercion...),
		Coerce("firstName", nameCoercion...),
		Coerce("lastName", nameCoercion...),
	}
	opts = append(opts, coerceAll(profileFields, optionalCoercion)...)
	return append(opts, extra...)
}

func profileOptions(extra ...SchemaOption) []SchemaOption {
	opts := coerceAll([]string{"firstName", "lastName"}, nameCoercion)
	opts = append(opts, coerceAll(profileFields, optionalCoercion)...)
	return append(opts, extra...)
}

func categoryOptions(extra ...SchemaOption) []SchemaOption {
	opts := []SchemaOption{
		Coerce("name", nameCoercion...),
		Coerce("slug", Trim, Lowercase, EmptyToNull),
		Coerce("description", optionalCoercion...),
		Coerce("parentId", optionalCoercion...),
		Coerce("isActive", boolCoercion...),
		Coerce("sortOrder", intCoercion...),
	}
	return append(opts, extra...)
}

func attributeOptions(extra ...SchemaOption) []SchemaOption {
	opts := []SchemaOption{
		Coerce("name", nameCoercion...),
		Coerce("type", enumCoercion...),
		Coerce("categoryId", Trim),
		Coerce("isRequired", boolCoercion...),
		Coerce("isFilterable", boolCoercion...),
	}
	return append(opts, extra...)
}

var catalog = buildCatalog(
	NewSchema[models.RegisterRequest](SchemaAuthRegister, userOptions(
		Coerce("role", enumCoercion...),
		Default("role", models.RoleCustomer.String()),
		Refine(registerSellerRule),
	)...),
	NewSchema[models.LoginRequest](SchemaAuthLogin,
		Coerce("email", emailCoercion...),
	),
	NewSchema[models.ForgotPasswordRequest](SchemaAuthForgotPassword,
		Coerce("email", emailCoercion...),
	),
	NewSchema[models.ResetPasswordRequest](SchemaAuthResetPassword,
		Coerce("token", Trim),
		Refine(resetPasswordRule),
	),

	NewSchema[models.CreateUserRequest](SchemaUserCreate, userOptions(
		Coerce("role", enumCoercion...),
		Coerce("status", enumCoercion...),
		Default("status", models.StatusActive.String()),
		Refine(createUserSellerRule),
	)...),
	NewSchema[models.UpdateUserRequest](SchemaUserUpdate, userOptions(
		Coerce("role", enumCoercion...),
		Coerce("status", enumCoercion...),
		notEmptyRule(userUpdateEmpty),
		Refine(updateUserSellerRule),
	)...),
	NewSchema[models.UpdateProfileRequest](SchemaUserProfileUpdate, profileOptions(
		notEmptyRule(profileUpdateEmpty),
	)...),
	NewSchema[models.ChangePasswordRequest](SchemaUserChangePassword,
		Refine(changePasswordRule),
	),

	NewSchema[models.CreateCategoryRequest](SchemaCategoryCreate, categoryOptions(
		Default("isActive", true),
	)...),
	NewSchema[models.UpdateCategoryRequest](SchemaCategoryUpdate, categoryOptions(
		notEmptyRule(categoryUpdateEmpty),
	)...),

	NewSchema[models.CreateAttributeRequest](SchemaAttributeCreate, attributeOptions(
		Refine(createAttributeOptionsRule),
	)...),
	NewSchema[models.UpdateAttributeRequest](SchemaAttributeUpdate, attributeOptions(
		notEmptyRule(attributeUpdateEmpty),
		Refine(updateAttributeOptionsRule),
	)...),
)

func buildCatalog(schemas ...*Schema) map[string]*Schema {
	m := make(map[string]*Schema, len(schemas))
	for _, s := range schemas {
		if _, dup := m[s.name]; dup {
			panic(fmt.Sprintf("validators: schema %s declared twice", s.name))
		}
		m[s.name] = s
	}
	return m
}

// Lookup returns the catalog schema registered under name.
func Lookup(name string) (*Schema, error) {
	s, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return s, nil
}

// MustLookup is like [Lookup] but panics on unknown names. It is meant for
// route declarations.
func MustLookup(name string) *Schema {
	s, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// SchemaNames lists every catalog schema name.
func SchemaNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
