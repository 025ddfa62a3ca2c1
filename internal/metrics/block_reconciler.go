package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockFetchTipTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "fetch_tip_total",
		Help:      "Count of attempts to fetch the chain tip height.",
	}, []string{"network", "status"})

	blockFetchTipDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "fetch_tip_duration_seconds",
		Help:      "Duration of fetching the chain tip height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "process_batch_total",
		Help:      "Count of processed block batches.",
	}, []string{"network", "status"})

	blockProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of block heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "process_batch_size",
		Help:      "Number of block heights processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	blockProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of processing a single block height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	blockLastProcessedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "utxoset7000",
		Subsystem: "block_reconciler",
		Name:      "last_processed_height",
		Help:      "Highest block height processed successfully.",
	}, []string{"network"})
)

// BlockReconciler tracks metrics for the confirmed-block reconciliation loop.
type BlockReconciler struct {
	network model.Network
}

// NewBlockReconciler constructs a BlockReconciler metrics collector.
func NewBlockReconciler(network model.Network) *BlockReconciler {
	if network == "" {
		network = "unknown"
	}
	return &BlockReconciler{network: network}
}

// ObserveFetchTip records a chain tip fetch outcome and duration.
func (m BlockReconciler) ObserveFetchTip(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blockFetchTipTotal.WithLabelValues(string(m.network), status).Inc()
	blockFetchTipDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a batch of block heights.
func (m BlockReconciler) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blockProcessBatchTotal.WithLabelValues(string(m.network), status).Inc()
	blockProcessBatchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	blockProcessBatchSize.WithLabelValues(string(m.network)).Observe(float64(heights))
}

// ObserveProcessHeight records processing of a single block height.
func (m BlockReconciler) ObserveProcessHeight(err error, height uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blockProcessHeightDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		blockLastProcessedHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}
