package otp

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	"gazette/internal/infra/auth"
	mockRepo "gazette/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(otpRepo repository.OtpRepository) service.OtpStore {
	cfg := &config.Config{}
	cfg.Otp = &config.OtpConfig{
		CodeTTL:         10 * time.Minute,
		MaxAttempts:     3,
		RateLimitWindow: time.Hour,
		RateLimitMax:    5,
	}

	return NewStore(StoreParams{
		Config:  cfg,
		OtpRepo: otpRepo,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestStore_GenerateAndStore(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()

	var stored *entity.OtpCode
	otpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OtpCode")).
		Run(func(ctx context.Context, code *entity.OtpCode) {
			stored = code
		}).
		Return(nil)

	plaintext, err := store.GenerateAndStore(ctx, "reader@example.com")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), plaintext)
	require.NotNil(t, stored)
	assert.Equal(t, "reader@example.com", stored.Email)
	assert.Equal(t, auth.HashToken(plaintext), stored.CodeHash)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpiresAt, time.Minute)
}

func TestStore_IsRateLimited(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "under budget", count: 4, want: false},
		{name: "at budget", count: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otpRepo := mockRepo.NewMockOtpRepository(t)
			store := newTestStore(otpRepo)

			ctx := context.Background()
			otpRepo.EXPECT().
				CountCreatedSince(ctx, "reader@example.com", mock.AnythingOfType("time.Time")).
				Return(tt.count, nil)

			limited, err := store.IsRateLimited(ctx, "reader@example.com")

			require.NoError(t, err)
			assert.Equal(t, tt.want, limited)
		})
	}
}

func TestStore_Validate_NoPendingCode(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(nil, repository.ErrOtpNotFound)

	err := store.Validate(ctx, "reader@example.com", "123456")

	assertAppErrorCode(t, err, "OTP_NOT_FOUND")
}

func TestStore_Validate_ExpiredCode(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:        uuid.New(),
			Email:     "reader@example.com",
			CodeHash:  auth.HashToken("123456"),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	err := store.Validate(ctx, "reader@example.com", "123456")

	assertAppErrorCode(t, err, "OTP_EXPIRED")
}

func TestStore_Validate_MismatchDecrementsBudget(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	codeID := uuid.New()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:        codeID,
			Email:     "reader@example.com",
			CodeHash:  auth.HashToken("123456"),
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
	otpRepo.EXPECT().IncrementAttempts(ctx, codeID).Return(1, nil)

	err := store.Validate(ctx, "reader@example.com", "654321")

	assertAppErrorCode(t, err, "OTP_MISMATCH")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "2 attempts remaining")
}

func TestStore_Validate_ThirdWrongGuessExhausts(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	codeID := uuid.New()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:           codeID,
			Email:        "reader@example.com",
			CodeHash:     auth.HashToken("123456"),
			ExpiresAt:    time.Now().Add(time.Minute),
			AttemptCount: 2,
		}, nil)
	otpRepo.EXPECT().IncrementAttempts(ctx, codeID).Return(3, nil)

	err := store.Validate(ctx, "reader@example.com", "654321")

	assertAppErrorCode(t, err, "OTP_EXHAUSTED")
}

func TestStore_Validate_ExhaustedCodeRejectsCorrectGuess(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	// Even the right code is refused once the attempt cap was reached.
	ctx := context.Background()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:           uuid.New(),
			Email:        "reader@example.com",
			CodeHash:     auth.HashToken("123456"),
			ExpiresAt:    time.Now().Add(time.Minute),
			AttemptCount: 3,
		}, nil)

	err := store.Validate(ctx, "reader@example.com", "123456")

	assertAppErrorCode(t, err, "OTP_EXHAUSTED")
}

func TestStore_Validate_Success(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	codeID := uuid.New()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:        codeID,
			Email:     "reader@example.com",
			CodeHash:  auth.HashToken("123456"),
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
	otpRepo.EXPECT().MarkUsed(ctx, codeID, mock.AnythingOfType("time.Time")).Return(int64(1), nil)

	err := store.Validate(ctx, "reader@example.com", "123456")

	assert.NoError(t, err)
}

func TestStore_Validate_ReplayLosesToConcurrentUse(t *testing.T) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	store := newTestStore(otpRepo)

	ctx := context.Background()
	codeID := uuid.New()
	otpRepo.EXPECT().
		FindLatestUnusedByEmail(ctx, "reader@example.com").
		Return(&entity.OtpCode{
			ID:        codeID,
			Email:     "reader@example.com",
			CodeHash:  auth.HashToken("123456"),
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)
	otpRepo.EXPECT().MarkUsed(ctx, codeID, mock.AnythingOfType("time.Time")).Return(int64(0), nil)

	err := store.Validate(ctx, "reader@example.com", "123456")

	assertAppErrorCode(t, err, "OTP_NOT_FOUND")
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
