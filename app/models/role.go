package models

import "fmt"

// Role is the closed set of account roles. Every comparison site must
// switch over all three variants; there is no free-form role string.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// ParseRole maps a stored role value onto the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleOwner:
		return RoleOwner, nil
	default:
		return RoleUser, fmt.Errorf("unknown role %q", s)
	}
}

// IsStaff reports whether the role grants access to the admin area.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleOwner:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

// IsOwner reports whether the role grants access to the owner area.
func (r Role) IsOwner() bool {
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin, RoleUser:
		return false
	default:
		return false
	}
}

// CanAssign reports whether a user with role r may assign target to
// another account. Only owners may mint admins or other owners.
func (r Role) CanAssign(target Role) bool {
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin:
		return target == RoleUser
	case RoleUser:
		return false
	default:
		return false
	}
}
