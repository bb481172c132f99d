package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GeodeMetrics holds all Prometheus metrics for the Geode module
type GeodeMetrics struct {
	// Fleet metrics
	GeodesRegistered prometheus.Gauge
	StateTransitions *prometheus.CounterVec

	// Dispatch metrics
	GeodesDispatched   *prometheus.CounterVec
	DispatchShortfalls prometheus.Counter

	// Report metrics
	ReportsHandled *prometheus.CounterVec

	// Health metrics
	HealthTransitions *prometheus.CounterVec
	ExpiredLeases     prometheus.Counter
}

var (
	geodeMetricsOnce sync.Once
	geodeMetrics     *GeodeMetrics
)

// NewGeodeMetrics creates and registers Geode metrics (singleton pattern)
func NewGeodeMetrics() *GeodeMetrics {
	geodeMetricsOnce.Do(func() {
		geodeMetrics = &GeodeMetrics{
			GeodesRegistered: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "geodes_registered",
					Help:      "Currently registered geodes",
				},
			),
			StateTransitions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "state_transitions_total",
					Help:      "Geode working state transitions",
				},
				[]string{"from", "to"},
			),
			GeodesDispatched: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "geodes_dispatched_total",
					Help:      "Geodes assigned to orders",
				},
				[]string{"domain"},
			),
			DispatchShortfalls: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "dispatch_shortfalls_total",
					Help:      "Dispatch rounds that found fewer idle geodes than requested",
				},
			),
			ReportsHandled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "reports_handled_total",
					Help:      "Lifecycle reports accepted",
				},
				[]string{"report_type"},
			),
			HealthTransitions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "health_transitions_total",
					Help:      "Geode health verdict changes",
				},
				[]string{"to"},
			),
			ExpiredLeases: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "geode",
					Name:      "expired_leases_total",
					Help:      "Pending assignments reclaimed after order expiry",
				},
			),
		}
	})
	return geodeMetrics
}
