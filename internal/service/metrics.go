package service

import (
	"sync"

	"wallet-governance/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce sync.Once

	dummyTxTransitions *prometheus.CounterVec
	dummyTxRejections  *prometheus.CounterVec
	eventsHandled      *prometheus.CounterVec
	invariantFailures  *prometheus.CounterVec
	healthRequests     *prometheus.CounterVec
	handleDuration     *prometheus.HistogramVec
)

func ensureMetrics() {
	metricsOnce.Do(func() {
		dummyTxTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Subsystem: "dummy_tx",
			Name:      "transitions_total",
			Help:      "Dummy transaction state transitions by type and target status.",
		}, []string{"type", "status"})
		dummyTxRejections = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Subsystem: "dummy_tx",
			Name:      "rejections_total",
			Help:      "Rejected dummy transaction operations by error code.",
		}, []string{"operation", "code"})
		eventsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Subsystem: "events",
			Name:      "handled_total",
			Help:      "Inbound events by kind and outcome.",
		}, []string{"kind", "result"})
		invariantFailures = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Name:      "invariant_violations_total",
			Help:      "Operations aborted by an invariant violation.",
		}, []string{"component"})
		healthRequests = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Subsystem: "health",
			Name:      "requests_total",
			Help:      "Key health-check requests by outcome.",
		}, []string{"result"})
		handleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "governance",
			Subsystem: "events",
			Name:      "handle_duration_seconds",
			Help:      "Time spent reconciling one event.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"kind"})
	})
}

// observeRejection counts a refused operation by error code, and separately
// when the refusal was an invariant violation.
func observeRejection(component, operation string, err error) {
	code := apperror.CodeOf(err)
	if code == "" {
		code = "unknown"
	}
	dummyTxRejections.WithLabelValues(operation, code).Inc()
	if apperror.IsInvariant(err) {
		invariantFailures.WithLabelValues(component).Inc()
	}
}
