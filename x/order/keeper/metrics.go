package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics tracks order book activity for Prometheus
type OrderMetrics struct {
	OrdersCreated    prometheus.Counter
	OrdersFinished   prometheus.Counter
	EscrowRefunds    prometheus.Counter
	StateTransitions *prometheus.CounterVec
}

var (
	orderMetricsOnce     sync.Once
	orderMetricsInstance *OrderMetrics
)

// NewOrderMetrics creates the order metrics singleton. Registration with the
// default registry must happen only once per process.
func NewOrderMetrics() *OrderMetrics {
	orderMetricsOnce.Do(func() {
		orderMetricsInstance = &OrderMetrics{
			OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "geodenet",
				Subsystem: "order",
				Name:      "orders_created_total",
				Help:      "Total number of orders accepted into the book",
			}),
			OrdersFinished: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "geodenet",
				Subsystem: "order",
				Name:      "orders_finished_total",
				Help:      "Total number of orders that reached the terminal state",
			}),
			EscrowRefunds: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "geodenet",
				Subsystem: "order",
				Name:      "escrow_refunds_total",
				Help:      "Total number of escrow refunds paid out on cancellation",
			}),
			StateTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "geodenet",
				Subsystem: "order",
				Name:      "state_transitions_total",
				Help:      "Aggregate order state transitions by from/to state",
			}, []string{"from", "to"}),
		}
	})
	return orderMetricsInstance
}
