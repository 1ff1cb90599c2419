package service

import "context"

// OtpStore generates, rate-limits and verifies email one-time passcodes.
type OtpStore interface {
	// GenerateAndStore draws a random 6-digit code, persists its hash, and
	// returns the plaintext exactly once for hand-off to the mail sender.
	GenerateAndStore(ctx context.Context, email string) (string, error)

	// IsRateLimited reports whether the address has exhausted its issuance
	// budget for the trailing window.
	IsRateLimited(ctx context.Context, email string) (bool, error)

	// Validate checks a submitted code against the most recent pending one
	// for the address, enforcing expiry, the attempt cap and single use.
	Validate(ctx context.Context, email, submittedCode string) error
}
