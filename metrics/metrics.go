// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for contact submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomeInvalid = "invalid"
	OutcomeSaved   = "saved"
	OutcomeFailed  = "failed"
)

// Relay results
const (
	RelaySkipped  = "skipped"
	RelaySent     = "sent"
	RelayNoID     = "no_id"
	RelayRejected = "rejected"
	RelayError    = "error"
)

var (
	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contact",
		Name:      "submissions_total",
		Help:      "Contact submissions by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	relayAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contact",
		Name:      "relay_results_total",
		Help:      "Email relay results for contact submissions.",
	}, []string{"result"})

	storeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contact",
		Name:      "store_errors_total",
		Help:      "Persistence failures by operation.",
	}, []string{"op"})
)

func ObserveSubmission(endpoint, outcome string) {
	submissions.WithLabelValues(endpoint, outcome).Inc()
}

func ObserveRelay(result string) {
	relayAttempts.WithLabelValues(result).Inc()
}

func ObserveStoreError(op string) {
	storeErrors.WithLabelValues(op).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
