package otp

import (
	"context"
	"testing"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/service"
	mockService "gazette/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Verify_Success(t *testing.T) {
	store := mockService.NewMockOtpStore(t)
	verifier := NewAdapter(AdapterParams{Store: store})

	ctx := context.Background()
	store.EXPECT().Validate(ctx, "reader@example.com", "123456").Return(nil)

	identity, err := verifier.Verify(ctx, service.Credentials{
		Email: "  Reader@Example.COM ",
		Otp:   "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderEmail, identity.Provider)
	assert.Equal(t, "reader@example.com", identity.ProviderID)
	assert.Equal(t, "reader@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Empty(t, identity.Name)
}

func TestAdapter_Verify_CarriesClientName(t *testing.T) {
	store := mockService.NewMockOtpStore(t)
	verifier := NewAdapter(AdapterParams{Store: store})

	ctx := context.Background()
	store.EXPECT().Validate(ctx, "reader@example.com", "123456").Return(nil)

	identity, err := verifier.Verify(ctx, service.Credentials{
		Email:      "reader@example.com",
		Otp:        "123456",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", identity.Name)
}

func TestAdapter_Verify_RequiresEmailAndCode(t *testing.T) {
	verifier := NewAdapter(AdapterParams{Store: mockService.NewMockOtpStore(t)})

	ctx := context.Background()

	_, err := verifier.Verify(ctx, service.Credentials{Email: "reader@example.com"})
	assertAppErrorCode(t, err, "INVALID_REQUEST")

	_, err = verifier.Verify(ctx, service.Credentials{Otp: "123456"})
	assertAppErrorCode(t, err, "INVALID_REQUEST")
}

func TestAdapter_Verify_PropagatesStoreRejection(t *testing.T) {
	store := mockService.NewMockOtpStore(t)
	verifier := NewAdapter(AdapterParams{Store: store})

	ctx := context.Background()
	store.EXPECT().Validate(ctx, "reader@example.com", "000000").Return(assert.AnError)

	_, err := verifier.Verify(ctx, service.Credentials{Email: "reader@example.com", Otp: "000000"})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAdapter_Provider(t *testing.T) {
	verifier := NewAdapter(AdapterParams{Store: mockService.NewMockOtpStore(t)})

	assert.Equal(t, entity.ProviderEmail, verifier.Provider())
}
