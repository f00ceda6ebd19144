// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Email is the natural key used by tokens and ownership checks.
type User struct {
	ID           uuid.UUID          // The Global Unique Identifier (GUID) for the user.
	Email        string             // The user's login identifier and token subject.
	Name         string             // The user's display name.
	PhotoURL     string             // Avatar image URL supplied at signup.
	Role         Role               // buyer, seller or admin.
	Verification VerificationStatus // Admin-granted trust flag, meaningful for sellers.
	CreatedAt    time.Time          // Timestamp of when this account was created.
	UpdatedAt    time.Time          // Timestamp of the last modification to this account.
}

// IsVerified reports whether an admin has verified this account.
func (u *User) IsVerified() bool {
	return u.Verification == VerificationVerified
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Role == role
}

// VerificationStatus is the admin-granted trust state of an account.
type VerificationStatus string

const (
	// VerificationUnverified is the default for new accounts.
	VerificationUnverified VerificationStatus = "unverified"
	// VerificationVerified marks an account trusted by an admin.
	VerificationVerified VerificationStatus = "verified"
)

// IsValid checks if the status is a known value.
func (s VerificationStatus) IsValid() bool {
	return s == VerificationUnverified || s == VerificationVerified
}
