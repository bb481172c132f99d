package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AttestorMetrics holds all Prometheus metrics for the Attestor module
type AttestorMetrics struct {
	AttestorsRegistered prometheus.Gauge
	Heartbeats          prometheus.Counter
	HeartbeatExpiries   prometheus.Counter
	Attestations        prometheus.Counter
	Reports             prometheus.Counter
	QuorumVerdicts      *prometheus.CounterVec
}

var (
	attestorMetricsOnce sync.Once
	attestorMetrics     *AttestorMetrics
)

// NewAttestorMetrics creates and registers Attestor metrics (singleton pattern)
func NewAttestorMetrics() *AttestorMetrics {
	attestorMetricsOnce.Do(func() {
		attestorMetrics = &AttestorMetrics{
			AttestorsRegistered: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "attestors_registered",
					Help:      "Currently registered attestors",
				},
			),
			Heartbeats: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "heartbeats_total",
					Help:      "Heartbeats received",
				},
			),
			HeartbeatExpiries: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "heartbeat_expiries_total",
					Help:      "Attestors swept out after missed heartbeats",
				},
			),
			Attestations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "attestations_total",
					Help:      "Geode attestations recorded",
				},
			),
			Reports: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "reports_total",
					Help:      "Geode misbehavior reports recorded",
				},
			),
			QuorumVerdicts: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "attestor",
					Name:      "quorum_verdicts_total",
					Help:      "Health verdicts delivered to the geode registry",
				},
				[]string{"verdict"},
			),
		}
	})
	return attestorMetrics
}
