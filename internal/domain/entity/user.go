// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRoleName is the baseline role attached to users created by the
// auth core and used as the claim fallback when a user has no role.
const DefaultRoleName = "authenticated"

// User is the single account a person converges onto, no matter which
// identity provider they sign in with. Provider metadata is refreshed on
// every login; the record itself is never deleted by the auth core.
type User struct {
	ID           uuid.UUID // The unique identifier for the user account.
	Email        string    // The user's email address, unique across the platform.
	Username     string    // Unique handle derived from the email local part at creation.
	DisplayName  string    // Optional display name; backfilled from providers, never overwritten.
	AvatarURL    string    // Optional avatar URL, refreshed whenever a provider supplies one.
	Bio          string    // Free-form profile text, edited outside the auth core.
	AuthProvider Provider  // The provider used on the most recent successful login.
	ProviderID   string    // Provider-scoped subject identifier (e.g. Apple/Google 'sub').
	Confirmed    bool      // Whether the email address has been verified.
	Blocked      bool      // Blocked users are rejected on every authentication path.
	Role         *Role     // The role attached at creation; carried as a claim only.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleName returns the user's role name, falling back to the baseline
// authenticated role when no role reference is attached.
func (u *User) RoleName() string {
	if u.Role == nil || u.Role.Name == "" {
		return DefaultRoleName
	}

	return u.Role.Name
}

// Role is an entry in the platform's role registry. The auth core only ever
// attaches a role to new users and copies its name into access-token claims.
type Role struct {
	ID   uuid.UUID
	Name string // Human-readable name, e.g. "Authenticated".
	Code string // Stable machine code, e.g. "authenticated".
}
