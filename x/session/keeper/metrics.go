package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SessionMetrics holds all Prometheus metrics for the Session module
type SessionMetrics struct {
	SessionIndex prometheus.Gauge
	PhaseBlocks  *prometheus.CounterVec
}

var (
	sessionMetricsOnce sync.Once
	sessionMetrics     *SessionMetrics
)

// NewSessionMetrics creates and registers Session metrics (singleton pattern)
func NewSessionMetrics() *SessionMetrics {
	sessionMetricsOnce.Do(func() {
		sessionMetrics = &SessionMetrics{
			SessionIndex: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "geodenet",
					Subsystem: "session",
					Name:      "session_index",
					Help:      "Current session index",
				},
			),
			PhaseBlocks: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "geodenet",
					Subsystem: "session",
					Name:      "phase_blocks_total",
					Help:      "Blocks processed per phase",
				},
				[]string{"phase"},
			),
		}
	})
	return sessionMetrics
}
