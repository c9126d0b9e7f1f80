// Package metrics exposes Prometheus counters for the result endpoints.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResultReads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "event_results",
		Name:      "reads_total",
		Help:      "Completed event result reads.",
	})

	ResultWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "event_results",
		Name:      "writes_total",
		Help:      "Completed event result reconciliations.",
	})

	ResultFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_results",
		Name:      "failures_total",
		Help:      "Failed result operations by kind.",
	}, []string{"op"})

	Exports = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "event_results",
		Name:      "exports_total",
		Help:      "Result snapshots uploaded to object storage.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "event_results",
		Name:      "request_duration_seconds",
		Help:      "Result operation latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)
