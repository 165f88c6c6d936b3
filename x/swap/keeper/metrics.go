package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the swap module
type Metrics struct {
	// Swap metrics
	SwapsTotal *prometheus.CounterVec

	// Liquidity metrics
	DepositsTotal    *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec

	// Pool metrics
	PoolsTotal    prometheus.Gauge
	PoolCreations prometheus.Counter

	// Inheritance metrics
	InheritanceDistributions prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers swap metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "swaps_total",
					Help:      "Total number of swap hops executed",
				},
				[]string{"pool"},
			),
			DepositsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "deposits_total",
					Help:      "Total number of liquidity deposits settled",
				},
				[]string{"pool"},
			),
			WithdrawalsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "withdrawals_total",
					Help:      "Total number of liquidity withdrawals",
				},
				[]string{"pool"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "pools_total",
					Help:      "Current number of liquidity pools",
				},
			),
			PoolCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
			InheritanceDistributions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pcash",
					Subsystem: "swap",
					Name:      "inheritance_distributions_total",
					Help:      "Total number of inheritance distributions",
				},
			),
		}
	})
	return metrics
}

// GetMetrics returns the singleton metrics instance
func GetMetrics() *Metrics {
	if metrics == nil {
		return NewMetrics()
	}
	return metrics
}

func (m *Metrics) SwapExecuted(pool string) {
	if m == nil {
		return
	}
	m.SwapsTotal.WithLabelValues(pool).Inc()
}

func (m *Metrics) LiquidityAdded(pool string) {
	if m == nil {
		return
	}
	m.DepositsTotal.WithLabelValues(pool).Inc()
}

func (m *Metrics) LiquidityRemoved(pool string) {
	if m == nil {
		return
	}
	m.WithdrawalsTotal.WithLabelValues(pool).Inc()
}

func (m *Metrics) PoolsCreated() {
	if m == nil {
		return
	}
	m.PoolCreations.Inc()
	m.PoolsTotal.Inc()
}

func (m *Metrics) PoolsRemoved() {
	if m == nil {
		return
	}
	m.PoolsTotal.Dec()
}

func (m *Metrics) InheritanceDistributed() {
	if m == nil {
		return
	}
	m.InheritanceDistributions.Inc()
}
