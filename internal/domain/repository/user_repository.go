// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gazette/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByProvider retrieves the single user owning the (provider, providerID)
	// pair. This is the primary stable key for provider-backed identities.
	FindByProvider(ctx context.Context, provider entity.Provider, providerID string) (*entity.User, error)

	// UsernameExists reports whether the username is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// ErrRoleNotFound is returned when a named role does not exist in the registry.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository looks up entries in the platform's role registry. The auth
// core only reads it, to attach a role to newly created users.
type RoleRepository interface {
	// FindByCode retrieves a role by its stable machine code.
	FindByCode(ctx context.Context, code string) (*entity.Role, error)
}
