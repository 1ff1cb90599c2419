// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignInInput carries one provider's credentials plus the device context the
// session will be bound to. Dispatch happens on the Provider tag.
type SignInInput struct {
	Provider    entity.Provider
	Credentials service.Credentials
	Device      service.DeviceContext
}

// SendOtpInput defines the data required to request a verification code.
type SendOtpInput struct {
	Email         string
	AgreedToTerms bool
}

// RefreshInput defines the data required to refresh a session.
type RefreshInput struct {
	RefreshToken string
	Device       service.DeviceContext
}

// --- Output DTOs ---

// SessionOutput returns the token pair after a successful sign-in.
type SessionOutput struct {
	AccessToken  string
	ExpiresIn    int64 // Access token lifetime in seconds.
	RefreshToken string
	User         *entity.User
	Created      bool // Whether the sign-in created a new account.
}

// SendOtpOutput acknowledges an OTP request without revealing whether the
// address belongs to an existing account.
type SendOtpOutput struct {
	Message   string
	ExpiresIn int64 // Code lifetime in seconds.
}

// RefreshOutput returns the renewed credentials. RefreshToken is empty when
// rotation is disabled and the presented token stays valid.
type RefreshOutput struct {
	AccessToken  string
	ExpiresIn    int64
	RefreshToken string
}

// SessionInfo is the sanitized view of one active session.
type SessionInfo struct {
	ID         uuid.UUID
	DeviceType entity.DeviceType
	DeviceInfo string
	IPAddress  string
	CreatedAt  time.Time
	LastUsedAt time.Time
	ExpiresAt  time.Time
}

// AuthUsecase defines the authentication operations the delivery layer
// depends on. Email OTP verification signs in through SignIn with the
// email provider tag.
type AuthUsecase interface {
	// SignIn verifies the credentials with the matching provider, resolves
	// the identity onto a user account and opens a session.
	SignIn(ctx context.Context, input SignInInput) (*SessionOutput, error)

	// SendOtp generates and mails a verification code, subject to the
	// per-address rate limit.
	SendOtp(ctx context.Context, input SendOtpInput) (*SendOtpOutput, error)

	// Refresh exchanges a live refresh token for a new access token,
	// rotating the refresh token when the deployment's policy says so.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// Logout revokes the presented session. The operation reports success
	// even when the revoke fails server-side; the residual risk window is
	// bounded by the refresh token's expiry.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// CurrentUser returns the caller's profile.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListSessions returns the caller's active sessions, most recent first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*SessionInfo, error)

	// RevokeSession revokes one of the caller's sessions by record ID.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
}
