package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// PricingRunsTotal counts pricing runs by outcome.
	PricingRunsTotal *prometheus.CounterVec
	// DiscountAppliedTotal counts aggregated discount applications by name.
	DiscountAppliedTotal *prometheus.CounterVec
	// DiscountAmountTotal accumulates discounted currency amounts by name.
	DiscountAmountTotal *prometheus.CounterVec
)

// MustRegisterPricingMetrics initialises and registers the pricing Prometheus
// collectors. Safe to call more than once; later calls reuse the collectors
// registered first.
func MustRegisterPricingMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		PricingRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_runs_total",
			Help:      "Count of pricing runs by outcome.",
		}, []string{"outcome"})
		DiscountAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_applied_total",
			Help:      "Count of aggregated discount applications by discount name.",
		}, []string{"discount"})
		DiscountAmountTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_amount_total",
			Help:      "Total currency amount removed, by discount name.",
		}, []string{"discount"})

		mustRegisterCollector(reg, PricingRunsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PricingRunsTotal = v
			}
		})
		mustRegisterCollector(reg, DiscountAppliedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DiscountAppliedTotal = v
			}
		})
		mustRegisterCollector(reg, DiscountAmountTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DiscountAmountTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register pricing metric: %w", err))
	}
}
