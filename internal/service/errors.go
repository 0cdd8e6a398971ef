package service

import (
	"errors"

	"github.com/MKhiriev/go-marketplace/internal/access"
)

// Request gate errors. They share the sentinels of the access package so a
// failure can be classified with a single errors.Is regardless of the stage
// that produced it.
var (
	ErrUnauthenticated = access.ErrUnauthenticated
	ErrForbidden       = access.ErrForbidden
)

// Reasons wrapped together with ErrUnauthenticated or ErrForbidden.
var (
	ErrNoTokenProvided  = errors.New("no token provided")
	ErrTokenIsExpired   = errors.New("token is expired")
	ErrTokenIsInvalid   = errors.New("token is invalid")
	ErrSubjectNotFound  = errors.New("token subject no longer exists")
	ErrAccountInactive  = errors.New("account is deactivated")
	ErrAccountSuspended = errors.New("account is suspended")
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailTaken              = errors.New("email is already registered")
	ErrCannotSelfRegisterAdmin = errors.New("super admin accounts cannot be self-registered")
	ErrInvalidResetToken       = errors.New("reset token is invalid or expired")
	ErrWrongPassword           = errors.New("current password is incorrect")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrUserNotFound           = errors.New("user not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrParentCategoryNotFound = errors.New("parent category not found")
	ErrCategoryIsOwnParent    = errors.New("category cannot be its own parent")
	ErrSlugTaken              = errors.New("category slug is already taken")
	ErrAttributeNotFound      = errors.New("attribute not found")
	ErrNothingToUpdate        = errors.New("nothing to update")
)
