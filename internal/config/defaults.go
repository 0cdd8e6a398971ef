package config

import "time"

// DefaultTokenSignKey is the fallback token signing secret. It is public
// knowledge and only suitable for local development; startup fails when
// it is used with APP_ENVIRONMENT=production.
const DefaultTokenSignKey = "go-marketplace-insecure-development-sign-key"

const (
	defaultTokenIssuer        = "go-marketplace"
	defaultTokenDuration      = 24 * time.Hour
	defaultResetTokenDuration = time.Hour
	defaultResetURL           = "http://localhost:3000/reset-password"
	defaultHTTPAddress        = "localhost:8080"
	defaultRequestTimeout     = 30 * time.Second
	defaultEnvironment        = "development"
	defaultVersion            = "dev"
	defaultSweepInterval      = 15 * time.Minute
)

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:       DefaultTokenSignKey,
			TokenIssuer:        defaultTokenIssuer,
			TokenDuration:      defaultTokenDuration,
			IdentityMode:       IdentityModeStore,
			PasswordHashKey:    DefaultTokenSignKey,
			ResetTokenDuration: defaultResetTokenDuration,
			ResetURL:           defaultResetURL,
			Environment:        defaultEnvironment,
			Version:            defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			ResetTokenSweepInterval: defaultSweepInterval,
		},
	}
}
