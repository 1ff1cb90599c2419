package impl

import (
	"io"
	"log/slog"
	"time"

	"gazette/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Otp = &config.OtpConfig{
		CodeTTL:         10 * time.Minute,
		MaxAttempts:     3,
		RateLimitWindow: time.Hour,
		RateLimitMax:    5,
	}

	return cfg
}

// captureCollector satisfies metrics.Collector and records the calls so
// tests can assert on emitted metrics.
type captureCollector struct {
	signIns        []string
	signInFailures []string
	otpIssued      int
	otpRejected    []string
	rotations      int
	revocations    []string
}

func (c *captureCollector) RecordSignIn(provider string) {
	c.signIns = append(c.signIns, provider)
}

func (c *captureCollector) RecordSignInFailure(provider string) {
	c.signInFailures = append(c.signInFailures, provider)
}

func (c *captureCollector) RecordOtpIssued() {
	c.otpIssued++
}

func (c *captureCollector) RecordOtpRejected(reason string) {
	c.otpRejected = append(c.otpRejected, reason)
}

func (c *captureCollector) RecordTokenRotation() {
	c.rotations++
}

func (c *captureCollector) RecordRevocation(reason string) {
	c.revocations = append(c.revocations, reason)
}
