// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.IdentityMode {
	case IdentityModeClaims, IdentityModeStore:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIdentityMode, cfg.App.IdentityMode)
	}

	if cfg.App.IsProduction() && (cfg.App.UsesInsecureSignKey() || cfg.App.PasswordHashKey == DefaultTokenSignKey) {
		return ErrInsecureSignKey
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
