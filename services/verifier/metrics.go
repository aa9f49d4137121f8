// Package verifier exposes merkle root verification over HTTP so indexers
// can re-check block roots reported by their upstream node without linking
// the library directly.
package verifier

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusVerifierVerifyBlock     *prometheus.CounterVec
	prometheusVerifierComputeRoot     prometheus.Counter
	prometheusVerifierComputeRootErr  prometheus.Counter
	prometheusVerifierVerifyDurations prometheus.Histogram
)

var prometheusMetricsInitOnce sync.Once

// initPrometheusMetrics initializes all the Prometheus metrics for the
// verifier service, guarded by sync.Once so repeated Server construction in
// tests does not register duplicates.
func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusVerifierVerifyBlock = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "merklecheck_verifier_verify_block",
			Help: "Number of block merkle root verifications",
		},
		[]string{
			"result", // valid or invalid
		},
	)

	prometheusVerifierComputeRoot = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "merklecheck_verifier_compute_root",
			Help: "Number of merkle root computations",
		},
	)

	prometheusVerifierComputeRootErr = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "merklecheck_verifier_compute_root_err",
			Help: "Number of failed merkle root computations",
		},
	)

	prometheusVerifierVerifyDurations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "merklecheck_verifier_verify_duration_seconds",
			Help:    "Duration of block merkle root verifications",
			Buckets: prometheus.DefBuckets,
		},
	)
}
