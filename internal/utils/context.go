// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed request-scoped context values, keyed hashing,
// HTTP response writing, JWT signing and verification,
// bearer header parsing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal is
// stored. Use WithPrincipal and PrincipalFromContext rather than the key
// directly.
var PrincipalCtxKey = contextKey("principal")

// PayloadCtxKey is the key under which the validated request payload is
// stored.
var PayloadCtxKey = contextKey("payload")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext retrieves the principal stored by WithPrincipal.
//
// Returns the principal and an ok flag:
//   - ok == true: a principal is attached to ctx
//   - ok == false: the request was never authenticated
//
// Example usage:
//
//	principal, ok := utils.PrincipalFromContext(r.Context())
//	if !ok {
//	    // handle unauthenticated request
//	}
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// WithPayload returns a copy of ctx carrying the validated payload. payload
// is expected to be a pointer to a request struct.
func WithPayload(ctx context.Context, payload any) context.Context {
	return context.WithValue(ctx, PayloadCtxKey, payload)
}

// PayloadFromContext retrieves the payload stored by WithPayload as *T.
// ok is false when no payload is attached or it has a different type.
func PayloadFromContext[T any](ctx context.Context) (*T, bool) {
	p, ok := ctx.Value(PayloadCtxKey).(*T)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}
