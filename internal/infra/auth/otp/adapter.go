package otp

import (
	"context"
	"strings"

	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"

	"go.uber.org/fx"
)

// adapter turns a verified OTP code into a provider identity. The email
// address doubles as the provider-scoped subject, so the same inbox always
// resolves to the same identity.
type adapter struct {
	store service.OtpStore
}

// AdapterParams holds dependencies for the email OTP verifier, injected by Fx.
type AdapterParams struct {
	fx.In

	Store service.OtpStore
}

// NewAdapter is the constructor for the email OTP verifier.
func NewAdapter(params AdapterParams) service.ProviderVerifier {
	return &adapter{store: params.Store}
}

// Provider identifies this verifier.
func (a *adapter) Provider() entity.Provider {
	return entity.ProviderEmail
}

// Verify consumes the submitted code and yields the caller's identity.
// A successful verification proves control of the inbox, so the address
// counts as verified.
func (a *adapter) Verify(ctx context.Context, creds service.Credentials) (*service.ProviderIdentity, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Otp == "" {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("email and code are required")
	}

	if err := a.store.Validate(ctx, email, creds.Otp); err != nil {
		return nil, err
	}

	identity := &service.ProviderIdentity{
		Provider:      entity.ProviderEmail,
		ProviderID:    email,
		Email:         email,
		EmailVerified: true,
	}
	if creds.GivenName != "" || creds.FamilyName != "" {
		identity.Name = strings.TrimSpace(creds.GivenName + " " + creds.FamilyName)
	}

	return identity, nil
}
