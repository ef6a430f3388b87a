package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the money and mail paths. Registered on the default registry
// and served from /metrics.
var (
	PaymentsInitiated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_payments_initiated_total",
		Help: "Number of credit purchase transactions initialized with the processor.",
	})

	PaymentsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_payments_verified_total",
		Help: "Number of payment verifications by outcome.",
	}, []string{"outcome"})

	CreditsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_credits_applied_total",
		Help: "Total credits applied to user balances.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_notifications_sent_total",
		Help: "Number of outbound notification emails by outcome.",
	}, []string{"outcome"})
)

// Verification outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeReplayed  = "replayed"
	OutcomeDelivered = "delivered"
)
