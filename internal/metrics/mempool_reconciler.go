package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolFetchPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "fetch_pending_total",
		Help:      "Count of attempts to fetch the pending transaction set.",
	}, []string{"network", "status"})

	mempoolFetchPendingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "fetch_pending_duration_seconds",
		Help:      "Duration of fetching the pending transaction set.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	mempoolProcessCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "process_cycle_total",
		Help:      "Count of processed mempool reconciliation cycles.",
	}, []string{"network", "status"})

	mempoolProcessCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "process_cycle_duration_seconds",
		Help:      "Duration of processing arrived pending transactions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	mempoolArrivedPerCycle = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "arrived_per_cycle",
		Help:      "Number of newly arrived pending transactions per cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	mempoolProcessTransactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "mempool_reconciler",
		Name:      "process_transaction_duration_seconds",
		Help:      "Duration of processing a single pending transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// MempoolReconciler tracks metrics for the mempool reconciliation loop.
type MempoolReconciler struct {
	network model.Network
}

// NewMempoolReconciler constructs a MempoolReconciler metrics collector.
func NewMempoolReconciler(network model.Network) *MempoolReconciler {
	if network == "" {
		network = "unknown"
	}
	return &MempoolReconciler{network: network}
}

// ObserveFetchPending records a pending set fetch outcome and duration.
func (m MempoolReconciler) ObserveFetchPending(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolFetchPendingTotal.WithLabelValues(string(m.network), status).Inc()
	mempoolFetchPendingDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessCycle records processing of one cycle's arrived transactions.
func (m MempoolReconciler) ObserveProcessCycle(err error, arrived int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolProcessCycleTotal.WithLabelValues(string(m.network), status).Inc()
	mempoolProcessCycleDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	mempoolArrivedPerCycle.WithLabelValues(string(m.network)).Observe(float64(arrived))
}

// ObserveProcessTransaction records processing of a single pending transaction.
func (m MempoolReconciler) ObserveProcessTransaction(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolProcessTransactionDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}
