package middleware

import "github.com/prometheus/client_golang/prometheus"

const (
	decisionGranted         = "granted"
	decisionDenied          = "denied"
	decisionUnauthenticated = "unauthenticated"

	reasonMissing = "missing_token"
	reasonScheme  = "unsupported_scheme"
	reasonInvalid = "invalid_token"
	reasonClaims  = "malformed_claims"
)

// Metrics counts authentication failures and authorization decisions.
// A nil *Metrics records nothing.
type Metrics struct {
	decisions    *prometheus.CounterVec
	authFailures *prometheus.CounterVec
}

// NewMetrics registers the security counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank_api",
			Name:      "authorization_decisions_total",
			Help:      "Authorization decisions by rule and outcome.",
		}, []string{"rule", "decision"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank_api",
			Name:      "authentication_failures_total",
			Help:      "Rejected bearer tokens by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.decisions, m.authFailures)
	return m
}

func (m *Metrics) decided(rule, decision string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(rule, decision).Inc()
}

func (m *Metrics) authFailed(reason string) {
	if m == nil {
		return
	}
	m.authFailures.WithLabelValues(reason).Inc()
}
