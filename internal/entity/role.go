package entity

import (
	"fmt"
	"strings"
)

// Role is a member's privilege level within an organization.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

var roles = []Role{RoleAdmin, RoleManager, RoleMember}

// Roles returns every role, most privileged first.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

// Next returns the role after r in privilege order, wrapping around.
func (r Role) Next() Role {
	for i, known := range roles {
		if r == known {
			return roles[(i+1)%len(roles)]
		}
	}
	return RoleMember
}

func (r Role) String() string {
	return string(r)
}

// ParseRole parses a role name, ignoring case and surrounding space.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q (expected one of admin, manager, member)", s)
	}
	return r, nil
}
