package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. It is fixed at registration.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleRecruiter Role = "Recruiter"
)

// Roles lists every known role.
var Roles = []Role{RoleStudent, RoleRecruiter}

// ParseRole accepts any casing of a known role name.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, nil
	case "recruiter":
		return RoleRecruiter, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRecruiter:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }
