package service

import (
	"context"

	"gazette/internal/domain/entity"
)

// ProviderIdentity is the normalized result of verifying a third-party
// credential. It is transient and never persisted as-is.
type ProviderIdentity struct {
	Provider      entity.Provider // Which verifier produced this identity.
	ProviderID    string          // Provider-scoped subject identifier.
	Email         string
	Name          string // Optional display name.
	AvatarURL     string // Optional avatar URL.
	EmailVerified bool   // Whether the provider attests to the address.
}

// Credentials carries the raw material a client submits for verification.
// Each verifier reads only the fields relevant to its provider.
type Credentials struct {
	Code       string // Apple authorization code.
	IDToken    string // Google ID token.
	Email      string // Email OTP address.
	Otp        string // Email OTP submitted code.
	GivenName  string // Apple client-supplied name, present on first consent only.
	FamilyName string
}

// ProviderVerifier is the single capability all identity paths implement:
// validate credentials and produce a normalized identity. Implementations
// are stateless and request-scoped; dispatch happens by provider tag.
type ProviderVerifier interface {
	// Verify validates the credentials against the provider and returns the
	// normalized identity, or a provider-validation failure on any
	// inconsistency.
	Verify(ctx context.Context, creds Credentials) (*ProviderIdentity, error)

	// Provider returns the tag this verifier handles.
	Provider() entity.Provider
}
