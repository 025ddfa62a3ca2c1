package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "utxoset7000",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "network", "status"})
	postgresRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "utxoset7000",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// PostgresRepository tracks metrics for Postgres repository operations.
type PostgresRepository struct {
	network model.Network
}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository(network model.Network) *PostgresRepository {
	if network == "" {
		network = "unknown"
	}
	return &PostgresRepository{network: network}
}

// Observe records duration and status of a repository operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	postgresRepositoryRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	postgresRepositoryRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
