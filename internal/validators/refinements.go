// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"

	"github.com/MKhiriev/go-marketplace/models"
)

const (
	msgSellerFields     = "companyName, streetAddress, city, state and country are required for sellers"
	msgPasswordMismatch = "passwords do not match"
	msgPasswordReused   = "new password must differ from the current password"
	msgOptionsRequired  = "options are required for SELECT and MULTISELECT attributes"
	msgNothingToUpdate  = "at least one field must be provided"
)

// sellerAddress holds the fields a SELLER account must carry.
type sellerAddress struct {
	companyName, streetAddress, city, state, country *string
}

func (a sellerAddress) complete() bool {
	for _, v := range []*string{a.companyName, a.streetAddress, a.city, a.state, a.country} {
		if v == nil || strings.TrimSpace(*v) == "" {
			return false
		}
	}
	return true
}

func sellerIssues(role string, a sellerAddress) []Issue {
	if role != models.RoleSeller.String() || a.complete() {
		return nil
	}
	return []Issue{{Path: "streetAddress", Message: msgSellerFields}}
}

func registerSellerRule(r *models.RegisterRequest) []Issue {
	return sellerIssues(r.Role, sellerAddress{r.CompanyName, r.StreetAddress, r.City, r.State, r.Country})
}

func createUserSellerRule(r *models.CreateUserRequest) []Issue {
	return sellerIssues(r.Role, sellerAddress{r.CompanyName, r.StreetAddress, r.City, r.State, r.Country})
}

// updateUserSellerRule applies only when the update promotes the account to
// SELLER; the stored address is not known here.
func updateUserSellerRule(r *models.UpdateUserRequest) []Issue {
	if r.Role == nil {
		return nil
	}
	return sellerIssues(*r.Role, sellerAddress{
		r.CompanyName.Ptr(), r.StreetAddress.Ptr(), r.City.Ptr(), r.State.Ptr(), r.Country.Ptr(),
	})
}

func resetPasswordRule(r *models.ResetPasswordRequest) []Issue {
	if r.Password != r.ConfirmPassword {
		return []Issue{{Path: "confirmPassword", Message: msgPasswordMismatch}}
	}
	return nil
}

func changePasswordRule(r *models.ChangePasswordRequest) []Issue {
	if r.NewPassword == r.CurrentPassword {
		return []Issue{{Path: "newPassword", Message: msgPasswordReused}}
	}
	return nil
}

func optionsIssues(attrType string, options []string) []Issue {
	if models.AttributeTypeHasOptions(attrType) && len(options) == 0 {
		return []Issue{{Path: "options", Message: msgOptionsRequired}}
	}
	return nil
}

func createAttributeOptionsRule(r *models.CreateAttributeRequest) []Issue {
	return optionsIssues(r.Type, r.Options)
}

func updateAttributeOptionsRule(r *models.UpdateAttributeRequest) []Issue {
	if r.Type == nil {
		return nil
	}
	return optionsIssues(*r.Type, r.Options)
}

// notEmptyRule rejects update payloads that carry no field at all.
func notEmptyRule[T any](isEmpty func(*T) bool) SchemaOption {
	return Refine(func(r *T) []Issue {
		if isEmpty(r) {
			return []Issue{{Message: msgNothingToUpdate}}
		}
		return nil
	})
}

func userUpdateEmpty(r *models.UpdateUserRequest) bool {
	return r.Email == nil && r.Password == nil && r.FirstName == nil && r.LastName == nil &&
		r.Role == nil && r.Status == nil &&
		r.Phone.IsZero() && r.CompanyName.IsZero() && r.StreetAddress.IsZero() &&
		r.City.IsZero() && r.State.IsZero() && r.Country.IsZero() && r.ZipCode.IsZero()
}

func profileUpdateEmpty(r *models.UpdateProfileRequest) bool {
	return r.FirstName == nil && r.LastName == nil &&
		r.Phone.IsZero() && r.CompanyName.IsZero() && r.StreetAddress.IsZero() &&
		r.City.IsZero() && r.State.IsZero() && r.Country.IsZero() && r.ZipCode.IsZero()
}

func categoryUpdateEmpty(r *models.UpdateCategoryRequest) bool {
	return r.Name == nil && r.Slug == nil && r.Description.IsZero() && r.ParentID.IsZero() &&
		r.IsActive == nil && r.SortOrder == nil
}

func attributeUpdateEmpty(r *models.UpdateAttributeRequest) bool {
	return r.Name == nil && r.Type == nil && r.CategoryID == nil &&
		r.IsRequired == nil && r.IsFilterable == nil && r.Options == nil
}
