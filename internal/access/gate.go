// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access evaluates role-based route policies against the principal
// resolved for a request.
package access

import (
	"fmt"

	"github.com/MKhiriev/go-marketplace/models"
)

// Gate is a reusable authorization check bound to one route policy.
// A Gate holds no mutable state and may be shared between routes and
// goroutines.
type Gate struct {
	policy models.RoutePolicy
}

// BuildAccessGate returns a gate admitting principals whose role is one of
// roles. A gate built without roles denies everyone.
func BuildAccessGate(roles ...models.Role) Gate {
	return Gate{policy: models.NewRoutePolicy(roles...)}
}

// AllRoles returns a gate admitting any authenticated principal.
func AllRoles() Gate {
	return BuildAccessGate(models.AllRoles...)
}

// Check returns nil when principal may pass the gate.
//
// It returns [ErrUnauthenticated] when principal is nil and [ErrForbidden]
// when its role is outside the policy. The two are never conflated.
func (g Gate) Check(principal *models.Principal) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if !g.policy.Allows(principal.Role) {
		return fmt.Errorf("%w: role %q not in %v", ErrForbidden, principal.Role, g.policy.Strings())
	}
	return nil
}

// Policy returns the gate's route policy.
func (g Gate) Policy() models.RoutePolicy {
	return g.policy
}
