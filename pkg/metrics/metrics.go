package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PolicyDecisions counts validation outcomes per operation.
	PolicyDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vortex_policy_decisions_total",
		Help: "Policy validation decisions by operation and outcome",
	}, []string{"operation", "outcome"})

	// RoyaltyCorrections counts silent creator-share corrections applied at
	// sale time. A non-zero rate signals configuration drift upstream.
	RoyaltyCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vortex_royalty_corrections_total",
		Help: "Royalty configs auto-corrected during sale validation",
	})

	// RateLimitedRequests counts requests rejected by the rate limiter.
	RateLimitedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vortex_rate_limited_requests_total",
		Help: "Requests rejected by the fixed-window rate limiter",
	}, []string{"scope"})
)

// ObserveDecision records a validation outcome for the given operation.
func ObserveDecision(operation string, err error) {
	outcome := "allow"
	if err != nil {
		outcome = "reject"
	}
	PolicyDecisions.WithLabelValues(operation, outcome).Inc()
}
