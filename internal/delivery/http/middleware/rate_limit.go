package middleware

import (
	"sync"
	"time"

	domainerrors "gazette/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Limiter sizing for the OTP send route. The per-address issuance cap lives
// in the OTP store; this layer just blunts per-IP hammering.
const (
	otpSendRate  = rate.Limit(10.0 / 60.0) // 10 requests per minute
	otpSendBurst = 5

	limiterIdleTTL = 30 * time.Minute
)

// RateLimitMiddleware applies a token-bucket limit per client IP.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimitMiddleware creates a new per-IP rate limiter.
func NewRateLimitMiddleware() *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: make(map[string]*ipLimiter),
	}
}

// LimitOtpSend guards the OTP send route.
func (m *RateLimitMiddleware) LimitOtpSend(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return domainerrors.ErrRateLimited.WithDetails("too many requests from this address")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	entry, ok := m.limiters[ip]
	if !ok {
		// Piggyback stale-entry cleanup on new-IP arrivals.
		for key, other := range m.limiters {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(m.limiters, key)
			}
		}

		entry = &ipLimiter{limiter: rate.NewLimiter(otpSendRate, otpSendBurst)}
		m.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}
