// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"gazette/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOtpNotFound is returned when no pending code exists for an address.
var ErrOtpNotFound = errors.New("otp code not found")

// OtpRepository defines the persistence operations for one-time passcodes.
// Attempt counting must be implemented as a single atomic statement at the
// storage boundary, never as a read followed by a write from application
// code: two concurrent wrong guesses against the same row must not both
// escape the attempt cap.
type OtpRepository interface {
	// Create persists a freshly generated code row.
	Create(ctx context.Context, code *entity.OtpCode) error

	// FindLatestUnusedByEmail retrieves the most recently created row for the
	// email with used=false, regardless of expiry or attempt count.
	FindLatestUnusedByEmail(ctx context.Context, email string) (*entity.OtpCode, error)

	// IncrementAttempts atomically bumps attemptCount on the row and returns
	// the new count. The increment is committed before the caller reports a
	// mismatch, so brute-force protection survives retries and crashes.
	IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error)

	// MarkUsed sets used=true and usedAt, but only if the row is still
	// unused. It returns the number of rows affected; a replayed success
	// observes zero.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (int64, error)

	// CountCreatedSince counts rows created for the email after the given
	// instant, for rate limiting.
	CountCreatedSince(ctx context.Context, email string, since time.Time) (int, error)
}
