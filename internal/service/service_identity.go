// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

// NewIdentityResolver returns the resolver selected by cfg.IdentityMode:
// IdentityModeClaims trusts the credential, IdentityModeStore re-reads the
// subject from the user repository.
func NewIdentityResolver(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (IdentityResolver, error) {
	switch cfg.IdentityMode {
	case config.IdentityModeClaims:
		return &trustClaimsResolver{}, nil
	case config.IdentityModeStore:
		return &storeConfirmedResolver{userRepository: userRepository, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidIdentityMode, cfg.IdentityMode)
	}
}

// trustClaimsResolver builds the principal from the claims alone. It does no
// I/O and the resulting principal carries no status.
type trustClaimsResolver struct{}

func (r *trustClaimsResolver) Resolve(_ context.Context, claims models.Claims) (models.Principal, error) {
	return models.PrincipalFromClaims(claims), nil
}

// storeConfirmedResolver fetches the subject's current record. The stored
// role and status replace whatever the credential claims.
type storeConfirmedResolver struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// Resolve fails with ErrUnauthenticated when the subject is gone or
// deactivated, and with ErrForbidden when it is suspended. Store failures are
// returned as they are.
func (r *storeConfirmedResolver) Resolve(ctx context.Context, claims models.Claims) (models.Principal, error) {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindUserByID(ctx, claims.SubjectID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("subject_id", claims.SubjectID.String()).Msg("token subject not found")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrSubjectNotFound)
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("error confirming token subject: %w", err)
	}

	switch user.Status {
	case models.StatusDeactivated:
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrAccountInactive)
	case models.StatusSuspended:
		return models.Principal{}, fmt.Errorf("%w: %w", ErrForbidden, ErrAccountSuspended)
	}

	if user.Role != claims.Role {
		log.Debug().
			Str("subject_id", claims.SubjectID.String()).
			Str("claimed_role", claims.Role.String()).
			Str("stored_role", user.Role.String()).
			Msg("claimed role differs from stored role")
	}

	return models.PrincipalFromUser(user), nil
}
