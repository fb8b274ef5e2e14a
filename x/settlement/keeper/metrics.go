package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// SettlementMetrics holds the Prometheus metrics for the settlement module
type SettlementMetrics struct {
	OperationsTotal  *prometheus.CounterVec
	OperationLatency *prometheus.HistogramVec
	DepositedVolume  *prometheus.CounterVec
	UnsettledAborts  *prometheus.CounterVec
}

var (
	settlementMetricsOnce sync.Once
	settlementMetrics     *SettlementMetrics
)

// NewSettlementMetrics creates and registers settlement metrics (singleton pattern)
func NewSettlementMetrics() *SettlementMetrics {
	settlementMetricsOnce.Do(func() {
		settlementMetrics = &SettlementMetrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "settlement",
					Name:      "operations_total",
					Help:      "Total number of settlement operations by outcome",
				},
				[]string{"op", "status"},
			),
			OperationLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "pawswap",
					Subsystem: "settlement",
					Name:      "operation_duration_seconds",
					Help:      "Time spent settling an operation",
					Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
				},
				[]string{"op"},
			),
			DepositedVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "settlement",
					Name:      "deposited_volume_total",
					Help:      "Total amount deposited to accounts by committed operations, in base units",
				},
				[]string{"asset"},
			),
			UnsettledAborts: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "settlement",
					Name:      "unsettled_aborts_total",
					Help:      "Operations aborted because a funds bundle was left unconsumed",
				},
				[]string{"op"},
			),
		}
	})
	return settlementMetrics
}

func (m *SettlementMetrics) observe(op, status string, seconds float64) {
	m.OperationsTotal.WithLabelValues(op, status).Inc()
	m.OperationLatency.WithLabelValues(op).Observe(seconds)
}

func toFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
