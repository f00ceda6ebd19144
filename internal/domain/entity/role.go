// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a regular buyer.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates an account that lists products.
	RoleSeller Role = "seller"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a client may pick this role at signup.
func (r Role) IsSelfAssignable() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
