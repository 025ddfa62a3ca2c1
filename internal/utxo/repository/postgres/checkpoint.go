package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
)

// Checkpoint returns the persisted indexing checkpoint, 0 when unset.
func (r *Repository) Checkpoint(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("checkpoint", err, start)
	}()

	const query = `SELECT block_height FROM checkpoints WHERE id = $1`

	var height int64
	err = r.db.QueryRowContext(ctx, query, model.CheckpointID).Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query checkpoint: %w", err)
	}
	return uint64(height), nil
}

// SetCheckpoint advances the indexing checkpoint. Writes that would move the
// checkpoint backwards are silently dropped, so replaying an old batch after
// a restart cannot regress indexing progress.
func (r *Repository) SetCheckpoint(ctx context.Context, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_checkpoint", err, start)
	}()

	value, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("checkpoint height: %w", err)
	}

	const query = `
INSERT INTO checkpoints (id, block_height) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET block_height = EXCLUDED.block_height
WHERE checkpoints.block_height <= EXCLUDED.block_height`

	if _, err = r.db.ExecContext(ctx, query, model.CheckpointID, value); err != nil {
		return fmt.Errorf("set checkpoint: %w", err)
	}
	return nil
}
