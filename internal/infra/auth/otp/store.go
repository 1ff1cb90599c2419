// Package otp implements email one-time-passcode issuance and verification,
// plus the provider adapter that turns a verified code into an identity.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"gazette/config"
	deliverycontext "gazette/internal/delivery/context"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	"gazette/internal/infra/auth"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// codeSpace bounds the 6-digit numeric code range.
var codeSpace = big.NewInt(1000000)

// store implements service.OtpStore.
type store struct {
	otpRepo     repository.OtpRepository
	codeTTL     time.Duration
	maxAttempts int
	rateWindow  time.Duration
	rateMax     int
	logger      *slog.Logger
}

// StoreParams holds dependencies for the OTP store, injected by Fx.
type StoreParams struct {
	fx.In

	Config  *config.Config
	OtpRepo repository.OtpRepository
	Logger  *slog.Logger
}

// NewStore is the constructor for the OTP store.
func NewStore(params StoreParams) service.OtpStore {
	return &store{
		otpRepo:     params.OtpRepo,
		codeTTL:     params.Config.Otp.CodeTTL,
		maxAttempts: params.Config.Otp.MaxAttempts,
		rateWindow:  params.Config.Otp.RateLimitWindow,
		rateMax:     params.Config.Otp.RateLimitMax,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the store's logger.
func (s *store) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateAndStore draws a uniformly random 6-digit code, persists its hash
// and returns the plaintext exactly once for the mail sender.
func (s *store) GenerateAndStore(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random code")
	}
	plaintext := fmt.Sprintf("%06d", n.Int64())

	code := &entity.OtpCode{
		Email:     email,
		CodeHash:  auth.HashToken(plaintext),
		ExpiresAt: time.Now().Add(s.codeTTL),
	}

	if err := s.otpRepo.Create(ctx, code); err != nil {
		return "", errors.Wrap(err, "failed to persist otp code")
	}

	s.log(ctx).Debug("Generated OTP code", slog.String("email", email))

	return plaintext, nil
}

// IsRateLimited reports whether the address already drew its issuance budget
// for the trailing window.
func (s *store) IsRateLimited(ctx context.Context, email string) (bool, error) {
	count, err := s.otpRepo.CountCreatedSince(ctx, email, time.Now().Add(-s.rateWindow))
	if err != nil {
		return false, errors.Wrap(err, "failed to count recent otp codes")
	}

	return count >= s.rateMax, nil
}

// Validate checks the submitted code against the most recent pending one.
// The attempt increment on a mismatch is committed before the failure is
// returned, so the cap survives client retries and crashes.
func (s *store) Validate(ctx context.Context, email, submittedCode string) error {
	code, err := s.otpRepo.FindLatestUnusedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOtpNotFound) {
			return domainerrors.ErrOtpNotFound.WrapMessage("no pending code for address")
		}

		return errors.Wrap(err, "failed to load otp code")
	}

	if time.Now().After(code.ExpiresAt) {
		return domainerrors.ErrOtpExpired.WrapMessage("code past its expiry")
	}
	if code.AttemptCount >= s.maxAttempts {
		return domainerrors.ErrOtpExhausted.WrapMessage("attempt cap reached")
	}

	if auth.HashToken(submittedCode) != code.CodeHash {
		newCount, err := s.otpRepo.IncrementAttempts(ctx, code.ID)
		if err != nil {
			return errors.Wrap(err, "failed to record otp attempt")
		}

		remaining := s.maxAttempts - newCount
		if remaining <= 0 {
			return domainerrors.ErrOtpExhausted.WrapMessage("attempt cap reached")
		}

		s.log(ctx).Warn("OTP mismatch",
			slog.String("email", email),
			slog.Int("attempts_remaining", remaining))

		return domainerrors.ErrOtpMismatch.WithDetails(
			strconv.Itoa(remaining) + " attempts remaining")
	}

	affected, err := s.otpRepo.MarkUsed(ctx, code.ID, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to mark otp code used")
	}
	if affected == 0 {
		// A concurrent verification consumed the row first.
		return domainerrors.ErrOtpNotFound.WrapMessage("code already consumed")
	}

	return nil
}
