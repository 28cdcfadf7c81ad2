// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user has in the system.
type Role string

const (
	// RoleExplorer indicates a consumer who swipes and saves places.
	RoleExplorer Role = "explorer"
	// RoleBusiness indicates an account that owns and manages places.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleExplorer, RoleBusiness:
		return true
	default:
		return false
	}
}
