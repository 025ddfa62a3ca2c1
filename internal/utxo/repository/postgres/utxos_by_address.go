package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

// UTXOsByAddress returns one page of an address's UTXOs plus the total number
// of records for the address. An unknown address yields an empty page.
func (r *Repository) UTXOsByAddress(ctx context.Context, address string, limit, offset uint64, sortByValueDesc bool) (utxos []model.UTXO, total uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("utxos_by_address", err, start)
	}()

	order := "id ASC"
	if sortByValueDesc {
		order = "value DESC, id ASC"
	}
	query := fmt.Sprintf(`
SELECT id, value, address, block_height, confirmed, count(*) OVER () AS total
FROM utxos
WHERE address = $1
ORDER BY %s
LIMIT $2 OFFSET $3`, order)

	rows, err := r.db.QueryContext(ctx, query, address, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query utxos by address: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var totalRows int64
	for rows.Next() {
		var (
			utxo   model.UTXO
			value  int64
			height int64
		)
		if err = rows.Scan(&utxo.ID, &value, &utxo.Address, &height, &utxo.Confirmed, &totalRows); err != nil {
			return nil, 0, fmt.Errorf("scan utxo: %w", err)
		}
		utxo.Value = uint64(value)
		utxo.BlockHeight = uint64(height)
		utxos = append(utxos, utxo)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate utxos by address: %w", err)
	}

	return utxos, uint64(totalRows), nil
}
