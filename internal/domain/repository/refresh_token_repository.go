// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"gazette/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the persistence operations for refresh
// tokens. Sessions are soft-revoked rather than deleted so that the
// revocation reason survives for auditing; physical deletion happens only
// through an external sweep of expired and revoked rows.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	// Revoked and expired rows are returned as-is; interpreting their state is
	// the caller's concern.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindByID retrieves a refresh token record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// FindActiveByUserID retrieves all non-revoked, non-expired sessions for a
	// user, most recent first.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// Revoke marks the row with the given hash revoked with the supplied
	// reason, but only if it is not revoked already. It returns the number of
	// rows affected: a concurrent rotation race using the same stale token is
	// decided by whoever observes rowsAffected == 1.
	Revoke(ctx context.Context, tokenHash string, reason entity.RevocationReason) (int64, error)

	// RevokeByID marks a single session revoked by its record ID, with the
	// same conditional semantics as Revoke.
	RevokeByID(ctx context.Context, id uuid.UUID, reason entity.RevocationReason) (int64, error)

	// RevokeAllByUserID marks every non-revoked session of the user revoked
	// with the supplied reason.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID, reason entity.RevocationReason) error

	// TouchLastUsed advances lastUsedAt on the row with the given hash.
	TouchLastUsed(ctx context.Context, tokenHash string, usedAt time.Time) error
}
