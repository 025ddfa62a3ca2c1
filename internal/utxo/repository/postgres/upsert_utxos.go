package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
	"github.com/lib/pq"
)

// UpsertUTXOs writes a batch of UTXO records in a single statement.
//
// With ifAbsent existing ids are left untouched: a record created by a
// confirmed block is never demoted by a later mempool observation. Without
// ifAbsent existing ids are overwritten, which is how an unconfirmed record
// transitions to confirmed when its transaction appears in a block. Duplicate
// ids never fail the batch either way.
func (r *Repository) UpsertUTXOs(ctx context.Context, utxos []model.UTXO, ifAbsent bool) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_utxos", err, start)
	}()

	if len(utxos) == 0 {
		return nil
	}

	ids := make([]string, len(utxos))
	values := make([]int64, len(utxos))
	addresses := make([]string, len(utxos))
	heights := make([]int64, len(utxos))
	confirmed := make([]bool, len(utxos))

	for i, utxo := range utxos {
		ids[i] = utxo.ID
		addresses[i] = utxo.Address
		confirmed[i] = utxo.Confirmed
		if values[i], err = safe.Int64(utxo.Value); err != nil {
			return fmt.Errorf("utxo %s value: %w", utxo.ID, err)
		}
		if heights[i], err = safe.Int64(utxo.BlockHeight); err != nil {
			return fmt.Errorf("utxo %s block height: %w", utxo.ID, err)
		}
	}

	query := `
INSERT INTO utxos (id, value, address, block_height, confirmed)
SELECT * FROM unnest($1::text[], $2::bigint[], $3::text[], $4::bigint[], $5::boolean[])
ON CONFLICT (id) DO NOTHING`
	if !ifAbsent {
		query = `
INSERT INTO utxos (id, value, address, block_height, confirmed)
SELECT * FROM unnest($1::text[], $2::bigint[], $3::text[], $4::bigint[], $5::boolean[])
ON CONFLICT (id) DO UPDATE SET
	value = EXCLUDED.value,
	address = EXCLUDED.address,
	block_height = EXCLUDED.block_height,
	confirmed = EXCLUDED.confirmed`
	}

	if _, err = r.db.ExecContext(ctx, query,
		pq.Array(ids),
		pq.Array(values),
		pq.Array(addresses),
		pq.Array(heights),
		pq.Array(confirmed),
	); err != nil {
		return fmt.Errorf("upsert utxos: %w", err)
	}
	return nil
}
