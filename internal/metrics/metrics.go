package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics tracks the order placement path.
type OrderMetrics struct {
	ordersPlaced prometheus.Counter
	ordersFailed prometheus.Counter

	placementDuration prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shoplite_orders_placed_total",
			Help: "Total number of orders committed to the ledger",
		}),
		ordersFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shoplite_orders_failed_total",
			Help: "Total number of order placements rejected or aborted",
		}),
		placementDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shoplite_order_placement_duration_seconds",
			Help:    "Duration of order placement calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// OrderPlaced increments the success counter. Safe on a nil receiver so the
// services can run without metrics in tests.
func (m *OrderMetrics) OrderPlaced() {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// OrderFailed increments the failure counter.
func (m *OrderMetrics) OrderFailed() {
	if m == nil {
		return
	}
	m.ordersFailed.Inc()
}

// ObservePlacement records how long a placement call took.
func (m *OrderMetrics) ObservePlacement(d time.Duration) {
	if m == nil {
		return
	}
	m.placementDuration.Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return alreadyRegistered.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return alreadyRegistered.ExistingCollector.(prometheus.Histogram)
		}
		panic(err)
	}
	return collector
}
