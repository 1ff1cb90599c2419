package service

import (
	"context"
	"time"

	"gazette/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the custom claims carried by access tokens. Resource
// servers verify the signature and read these without a database lookup.
type AccessClaims struct {
	UserID   uuid.UUID `json:"-"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Provider string    `json:"provider"`
	jwt.RegisteredClaims
}

// DeviceContext describes the client a session is being opened for.
type DeviceContext struct {
	DeviceType entity.DeviceType
	DeviceInfo string // Opaque client descriptor, e.g. the User-Agent header.
	IPAddress  string
}

// TokenService mints access tokens and manages the opaque refresh token
// lifecycle. This abstracts signing and session storage from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a short-lived signed token carrying the
	// user's id, email, role name and auth provider.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateAccessToken verifies the signature and expiry of an access
	// token and returns its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// GenerateRefreshToken mints a random opaque token, persists its hash
	// with the device context, and returns the plaintext exactly once.
	GenerateRefreshToken(ctx context.Context, user *entity.User, device DeviceContext) (string, error)

	// ValidateRefreshToken hashes the plaintext and looks up the session.
	// It returns nil — identically, whatever the underlying cause — when the
	// row is absent, revoked or expired, so callers cannot probe session state.
	ValidateRefreshToken(ctx context.Context, plaintext string) (*entity.RefreshToken, error)

	// RotateRefreshToken revokes the presented token with reason "rotated"
	// and mints a replacement inside one transaction, so the superseded and
	// replacement tokens are never simultaneously valid.
	RotateRefreshToken(ctx context.Context, oldPlaintext string, user *entity.User, device DeviceContext) (string, error)

	// RevokeRefreshToken marks the matching session revoked with the given
	// reason. It is a no-op when no matching row exists.
	RevokeRefreshToken(ctx context.Context, plaintext string, reason entity.RevocationReason) error

	// RevokeAllUserRefreshTokens bulk-revokes every live session of the user
	// with reason "logout".
	RevokeAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// TouchRefreshToken advances lastUsedAt on the presented token. Used by
	// deployments that disable rotation.
	TouchRefreshToken(ctx context.Context, plaintext string) error

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration

	// RotationEnabled reports whether refresh calls rotate the token or
	// merely advance lastUsedAt.
	RotationEnabled() bool
}
