// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoutePolicy is the ordered set of roles permitted to invoke an operation.
// An empty policy denies every principal.
type RoutePolicy struct {
	roles []Role
}

// NewRoutePolicy builds a policy from roles, keeping the first occurrence
// of each role and dropping zero values.
func NewRoutePolicy(roles ...Role) RoutePolicy {
	seen := make(map[Role]struct{}, len(roles))
	ordered := make([]Role, 0, len(roles))
	for _, r := range roles {
		if r.IsZero() {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		ordered = append(ordered, r)
	}
	return RoutePolicy{roles: ordered}
}

// Allows reports whether role is a member of the policy.
func (p RoutePolicy) Allows(role Role) bool {
	if role.IsZero() {
		return false
	}
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Roles returns a copy of the policy's roles in declaration order.
func (p RoutePolicy) Roles() []Role {
	out := make([]Role, len(p.roles))
	copy(out, p.roles)
	return out
}

// Strings returns the wire names of the policy's roles, for logging.
func (p RoutePolicy) Strings() []string {
	out := make([]string, 0, len(p.roles))
	for _, r := range p.roles {
		out = append(out, r.String())
	}
	return out
}
