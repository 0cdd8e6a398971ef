package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInsecureSignKey indicates that the built-in development signing key
	// would be used in production.
	ErrInsecureSignKey = errors.New("refusing to use the default token sign key in production")
	// ErrInvalidIdentityMode indicates an APP_IDENTITY_MODE other than
	// "claims" or "store".
	ErrInvalidIdentityMode = errors.New("invalid identity mode")
	// ErrInvalidAppConfigs indicates invalid token settings (for example, a
	// non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
