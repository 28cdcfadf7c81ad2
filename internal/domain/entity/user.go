// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an onboarded account. The role is fixed at onboarding.
type User struct {
	ID             int64     `json:"id"`               // Internal numeric identifier.
	ExternalAuthID string    `json:"external_auth_id"` // Subject issued by the session provider.
	Email          string    `json:"email"`            // Unique contact email.
	FullName       string    `json:"full_name"`        // Display name.
	Role           Role      `json:"role"`             // explorer or business.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
