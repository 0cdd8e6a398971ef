package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNoBearerToken is returned when the Authorization header is absent
	// or carries no credential after the scheme.
	ErrNoBearerToken = errors.New("no bearer token provided")

	// ErrMalformedAuthHeader is returned when the Authorization header does
	// not follow the "Bearer <credential>" form.
	ErrMalformedAuthHeader = errors.New("malformed authorization header")

	// ErrInvalidTokenParams is returned when a token is requested with an
	// empty issuer, key, subject or role, or a non-positive duration.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
)

// tokenClaims is the JWT body: the registered claims plus the subject's
// role at issuance time.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID in its canonical UUID form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - role: the subject's role
//
// All parameters are required. Returns ErrInvalidTokenParams if any of them
// are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-marketplace", userID, models.RoleSeller, time.Hour, "secret")
func GenerateJWTToken(issuer string, subjectID uuid.UUID, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || subjectID == uuid.Nil || role.IsZero() {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now().Truncate(time.Second)
	expiresAt := now.Add(tokenDuration)
	claims := &tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subjectID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    expiresAt,
		Claims: models.Claims{
			SubjectID: subjectID,
			Role:      role,
			IssuedAt:  now,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method check: only HS256 is accepted, so "none" and
//     asymmetric algorithms are rejected
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim parsing as a UUID
//   - role claim membership in the closed role set
//
// Errors from golang-jwt are wrapped, so callers can test for
// jwt.ErrTokenExpired and friends with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidClaims)
	}
	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: subject is not a UUID: %w", jwt.ErrTokenInvalidClaims, err)
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", jwt.ErrTokenInvalidClaims, err)
	}

	result := models.Claims{SubjectID: subjectID, Role: role}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

// ParseBearerToken extracts the credential from an Authorization header
// value of the form "Bearer <credential>". The scheme is matched
// case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return "", ErrNoBearerToken
	}

	parts := strings.Fields(header)
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedAuthHeader
	}
	switch len(parts) {
	case 1:
		return "", ErrNoBearerToken
	case 2:
		return parts[1], nil
	default:
		return "", ErrMalformedAuthHeader
	}
}
