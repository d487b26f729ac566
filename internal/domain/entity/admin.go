// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the access level of a back-office account.
type Role string

const (
	// RoleAdmin grants full access to the admin back-office.
	RoleAdmin Role = "admin"
	// RoleEditor grants content management access without account administration.
	RoleEditor Role = "editor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

// Admin is a back-office account. The email doubles as the login identifier
// and is never changed through the profile update path.
type Admin struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Avatar       string // Stored image path, resolved to a public URL on serialization.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account carries the admin role.
// Derived from Role at read time so it can never go stale.
func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin
}
