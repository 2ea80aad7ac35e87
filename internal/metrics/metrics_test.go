package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOrderMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newOrderMetricsWithRegisterer(registry)

	m.OrderPlaced()
	m.OrderPlaced()
	m.OrderFailed()
	m.ObservePlacement(25 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersPlaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersFailed))
}

func TestOrderMetrics_DoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newOrderMetricsWithRegisterer(registry)
	second := newOrderMetricsWithRegisterer(registry)

	first.OrderPlaced()
	second.OrderPlaced()

	// Both instances share the collectors already held by the registry
	assert.Equal(t, 2.0, testutil.ToFloat64(second.ordersPlaced))
}

func TestOrderMetrics_NilReceiver(t *testing.T) {
	var m *OrderMetrics

	assert.NotPanics(t, func() {
		m.OrderPlaced()
		m.OrderFailed()
		m.ObservePlacement(time.Second)
	})
}
