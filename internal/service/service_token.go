package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs and verifies HS256 bearer credentials.
//
// The sign key, issuer and duration are read-only after construction, so the
// service is safe for concurrent use.
type tokenService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue signs {sub, role, iat, exp, iss} for the user.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, user.Role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify returns the claims of the bearer credential. Missing, malformed,
// tampered and expired credentials all wrap ErrUnauthenticated together with
// ErrNoTokenProvided, ErrTokenIsExpired or ErrTokenIsInvalid.
func (s *tokenService) Verify(ctx context.Context, authorizationHeader string) (models.Claims, error) {
	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	switch {
	case errors.Is(err, utils.ErrNoBearerToken):
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrNoTokenProvided)
	case err != nil:
		return models.Claims{}, fmt.Errorf("%w: %w: %w", ErrUnauthenticated, ErrTokenIsInvalid, err)
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenIsExpired)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrTokenIsInvalid)
	}

	return claims, nil
}
