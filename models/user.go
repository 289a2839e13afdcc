// models/user.go
package models

import (
	"encoding/json"
	"strings"
)

// Role identifies which side of the marketplace an account belongs to.
// Fixed at registration; the client never changes it.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// UnmarshalJSON accepts the backend's legacy "user" literal as an alias for
// the customer role.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "user", "customer":
		*r = RoleCustomer
	default:
		*r = Role(raw)
	}
	return nil
}

// MarshalJSON emits the literal the backend expects, which is still "user"
// for the customer role.
func (r Role) MarshalJSON() ([]byte, error) {
	if r == RoleCustomer {
		return json.Marshal("user")
	}
	return json.Marshal(string(r))
}

// IsProvider reports whether the role is the provider side.
func (r Role) IsProvider() bool {
	return r == RoleProvider
}

// Identity is the authenticated principal as known to the client. All required
// fields are populated from the server's login/registration response; the
// client never constructs one from scratch.
type Identity struct {
	ID           string `json:"_id"`                    // Server-assigned unique identifier
	Name         string `json:"name"`                   // Display name
	Email        string `json:"email"`                  // Unique per account, enforced server-side
	Role         Role   `json:"role"`                   // "customer" or "provider"
	ProfilePhoto string `json:"profilePhoto,omitempty"` // Optional photo URL
}
