package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestShopMetricsRecordsCheckoutAndStock(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewShopMetrics(reg)

	m.ObserveCheckout("success", 20*time.Millisecond)
	m.ObserveCheckout("success", 10*time.Millisecond)
	m.ObserveCheckout("", time.Millisecond)
	m.AddStockMovement("out", 3)
	m.AddStockMovement("in", 10)
	m.AddStockMovement("in", 0)

	require.Equal(t, float64(2), counterValue(t, m.checkoutTotal.WithLabelValues("success")))
	require.Equal(t, float64(1), counterValue(t, m.checkoutTotal.WithLabelValues("unknown")))
	require.Equal(t, float64(3), counterValue(t, m.stockMovements.WithLabelValues("out")))
	require.Equal(t, float64(10), counterValue(t, m.stockMovements.WithLabelValues("in")))
}

func TestShopMetricsNilSafe(t *testing.T) {
	var m *ShopMetrics
	require.NotPanics(t, func() {
		m.ObserveCheckout("success", time.Second)
		m.AddStockMovement("out", 1)
	})

	empty := NewShopMetrics(nil)
	require.NotPanics(t, func() {
		empty.ObserveCheckout("error", time.Second)
		empty.AddStockMovement("in", 2)
	})
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, c.Write(&metric))
	return metric.GetCounter().GetValue()
}
