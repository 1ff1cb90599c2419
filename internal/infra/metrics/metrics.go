// Package metrics collects and exposes Prometheus metrics for the auth core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Collector counts authentication outcomes. The use case layer records
// through this interface so tests can pass a no-op.
type Collector interface {
	RecordSignIn(provider string)
	RecordSignInFailure(provider string)
	RecordOtpIssued()
	RecordOtpRejected(reason string)
	RecordTokenRotation()
	RecordRevocation(reason string)
}

type collector struct {
	signIns        *prometheus.CounterVec
	signInFailures *prometheus.CounterVec
	otpIssued      prometheus.Counter
	otpRejected    *prometheus.CounterVec
	rotations      prometheus.Counter
	revocations    *prometheus.CounterVec
}

// Result bundles the collector with its registry for Fx.
type Result struct {
	fx.Out

	Collector Collector
	Registry  *prometheus.Registry
}

// New builds the collector on a fresh registry.
func New() Result {
	c := &collector{
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazette_auth_sign_ins_total",
			Help: "Successful sign-ins by provider.",
		}, []string{"provider"}),
		signInFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazette_auth_sign_in_failures_total",
			Help: "Failed sign-in attempts by provider.",
		}, []string{"provider"}),
		otpIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gazette_auth_otp_issued_total",
			Help: "One-time passcodes generated and mailed.",
		}),
		otpRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazette_auth_otp_rejected_total",
			Help: "Rejected OTP verifications by reason.",
		}, []string{"reason"}),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gazette_auth_token_rotations_total",
			Help: "Refresh token rotations performed.",
		}),
		revocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gazette_auth_revocations_total",
			Help: "Refresh token revocations by reason.",
		}, []string{"reason"}),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		c.signIns,
		c.signInFailures,
		c.otpIssued,
		c.otpRejected,
		c.rotations,
		c.revocations,
	)

	return Result{Collector: c, Registry: reg}
}

func (c *collector) RecordSignIn(provider string) {
	c.signIns.WithLabelValues(provider).Inc()
}

func (c *collector) RecordSignInFailure(provider string) {
	c.signInFailures.WithLabelValues(provider).Inc()
}

func (c *collector) RecordOtpIssued() {
	c.otpIssued.Inc()
}

func (c *collector) RecordOtpRejected(reason string) {
	c.otpRejected.WithLabelValues(reason).Inc()
}

func (c *collector) RecordTokenRotation() {
	c.rotations.Inc()
}

func (c *collector) RecordRevocation(reason string) {
	c.revocations.WithLabelValues(reason).Inc()
}

// Handler returns the scrape endpoint handler for the registry.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
