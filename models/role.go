// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRole is returned when a string does not name one of the
// supported roles.
var ErrUnknownRole = errors.New("unknown role")

// ErrUnknownStatus is returned when a string does not name one of the
// supported account statuses.
var ErrUnknownStatus = errors.New("unknown account status")

// Role is the closed set of roles a principal may hold.
//
// A Role value can only be obtained through the exported constants or
// [ParseRole], so an unrecognized role never reaches authorization.
type Role struct {
	name string
}

var (
	RoleSuperAdmin = Role{name: "SUPER_ADMIN"}
	RoleSeller     = Role{name: "SELLER"}
	RoleCustomer   = Role{name: "CUSTOMER"}
)

// AllRoles lists every supported role in declaration order.
var AllRoles = []Role{RoleSuperAdmin, RoleSeller, RoleCustomer}

// ParseRole converts s into a [Role]. It returns [ErrUnknownRole] for any
// value outside the closed set, including the empty string.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if r.name == s {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// String returns the wire name of the role.
func (r Role) String() string {
	return r.name
}

// IsZero reports whether r was never assigned a role.
func (r Role) IsZero() bool {
	return r.name == ""
}

func (r Role) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.name)
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Status is the lifecycle state of an account.
type Status struct {
	name string
}

var (
	StatusActive      = Status{name: "ACTIVE"}
	StatusSuspended   = Status{name: "SUSPENDED"}
	StatusDeactivated = Status{name: "DEACTIVATED"}
)

// AllStatuses lists every supported account status.
var AllStatuses = []Status{StatusActive, StatusSuspended, StatusDeactivated}

// ParseStatus converts s into a [Status] or returns [ErrUnknownStatus].
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if st.name == s {
			return st, nil
		}
	}
	return Status{}, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) String() string {
	return s.name
}

// IsZero reports whether the status is unknown. Principals resolved from
// token claims alone carry no status.
func (s Status) IsZero() bool {
	return s.name == ""
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(s.name)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer so roles are stored by name.
func (r Role) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return r.name, nil
}

// Scan implements sql.Scanner. Unknown names are rejected.
func (r *Role) Scan(src any) error {
	name, err := scanName(src)
	if err != nil {
		return err
	}
	parsed, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (s Status) Value() (driver.Value, error) {
	if s.IsZero() {
		return nil, nil
	}
	return s.name, nil
}

func (s *Status) Scan(src any) error {
	name, err := scanName(src)
	if err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func scanName(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into an enum name", src)
	}
}
