package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// SalesProcessedTotal counts settled sales by payment method.
	SalesProcessedTotal *prometheus.CounterVec
	// SaleAmount records sale totals in minor units.
	SaleAmount prometheus.Histogram
	// StockDeductionsTotal counts units deducted from inventory at settlement.
	StockDeductionsTotal prometheus.Counter
	// CartRejectionsTotal counts rejected cart mutations by reason.
	CartRejectionsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers POS domain collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SalesProcessedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_processed_total",
			Help:      "Count of settled sales by payment method.",
		}, []string{"method"})
		SaleAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sale_amount_minor_units",
			Help:      "Distribution of sale totals in minor currency units.",
			Buckets:   []float64{10000, 50000, 100000, 500000, 1000000, 5000000, 10000000},
		})
		StockDeductionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_deductions_total",
			Help:      "Total units deducted from inventory by sale settlement.",
		})
		CartRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_rejections_total",
			Help:      "Count of rejected cart mutations by reason.",
		}, []string{"reason"})

		mustRegisterCollector(reg, SalesProcessedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SalesProcessedTotal = v
			}
		})
		mustRegisterCollector(reg, SaleAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				SaleAmount = v
			}
		})
		mustRegisterCollector(reg, StockDeductionsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				StockDeductionsTotal = v
			}
		})
		mustRegisterCollector(reg, CartRejectionsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CartRejectionsTotal = v
			}
		})
	})
}
