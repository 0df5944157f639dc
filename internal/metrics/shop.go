package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShopMetrics 结算与库存指标
type ShopMetrics struct {
	checkoutTotal    *prometheus.CounterVec
	checkoutDuration prometheus.Histogram
	stockMovements   *prometheus.CounterVec
}

// NewShopMetrics 在给定 registerer 上注册指标；reg 为 nil 时返回空实现
func NewShopMetrics(reg prometheus.Registerer) *ShopMetrics {
	if reg == nil {
		return &ShopMetrics{}
	}
	checkoutTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xinna_checkout_total",
		Help: "Checkout attempts partitioned by result.",
	}, []string{"result"})
	checkoutDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "xinna_checkout_duration_seconds",
		Help:    "Duration of checkout transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	stockMovements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xinna_stock_movements_total",
		Help: "Units of stock moved, partitioned by direction.",
	}, []string{"direction"})
	reg.MustRegister(checkoutTotal, checkoutDuration, stockMovements)
	return &ShopMetrics{
		checkoutTotal:    checkoutTotal,
		checkoutDuration: checkoutDuration,
		stockMovements:   stockMovements,
	}
}

// ObserveCheckout 记录一次结算结果与耗时
func (m *ShopMetrics) ObserveCheckout(result string, duration time.Duration) {
	if m == nil || m.checkoutTotal == nil {
		return
	}
	m.checkoutTotal.WithLabelValues(normalizeLabel(result)).Inc()
	if m.checkoutDuration != nil {
		m.checkoutDuration.Observe(duration.Seconds())
	}
}

// AddStockMovement 累加库存变动件数
func (m *ShopMetrics) AddStockMovement(direction string, units int) {
	if m == nil || m.stockMovements == nil || units <= 0 {
		return
	}
	m.stockMovements.WithLabelValues(normalizeLabel(direction)).Add(float64(units))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
