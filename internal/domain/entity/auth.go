// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session on one
// device. Only the SHA-256 hash of the opaque token is ever persisted;
// the plaintext is handed to the client exactly once.
type RefreshToken struct {
	ID            uuid.UUID        // The unique ID for this specific refresh token record.
	UserID        uuid.UUID        // Links this session to the User it belongs to.
	TokenHash     string           // SHA-256 hex of the raw refresh token, unique.
	DeviceType    DeviceType       // The client platform the session was opened from.
	DeviceInfo    string           // Opaque client descriptor (user agent, app build, ...).
	IPAddress     string           // Remote address observed at issuance.
	ExpiresAt     time.Time        // Issuance + the configured refresh lifetime (7 days).
	LastUsedAt    time.Time        // Updated on each refresh; issuance time initially.
	Revoked       bool             // Revoked sessions never validate again.
	RevokedAt     *time.Time       // When the session was revoked, if it was.
	RevokedReason RevocationReason // Why the session was revoked, if it was.
	CreatedAt     time.Time        // When the session was created (i.e. the login time).
}

// Active reports whether the token is still usable at the given instant.
func (t *RefreshToken) Active(now time.Time) bool {
	return !t.Revoked && t.ExpiresAt.After(now)
}

// OtpCode is an ephemeral email verification artifact. A row becomes
// permanently inert once used or once three wrong guesses were recorded;
// physical cleanup is delegated to an external sweep.
type OtpCode struct {
	ID           uuid.UUID
	Email        string     // The address the code was mailed to.
	CodeHash     string     // SHA-256 hex of the 6-digit code; the plaintext is never stored.
	ExpiresAt    time.Time  // Issuance + 10 minutes.
	AttemptCount int        // Monotonically non-decreasing, capped at the attempt limit.
	Used         bool       // Set on successful verification; the row is then inert.
	UsedAt       *time.Time // When the code was consumed, if it was.
	CreatedAt    time.Time
}
