package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DeleteUTXOs removes the given ids and returns how many rows were deleted.
// Absent ids are no-ops. With onlyUnconfirmed, confirmed records survive.
func (r *Repository) DeleteUTXOs(ctx context.Context, ids []string, onlyUnconfirmed bool) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_utxos", err, start)
	}()

	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM utxos WHERE id = ANY($1)`
	if onlyUnconfirmed {
		query += ` AND NOT confirmed`
	}

	res, err := r.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("delete utxos: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete utxos rows affected: %w", err)
	}
	return deleted, nil
}
