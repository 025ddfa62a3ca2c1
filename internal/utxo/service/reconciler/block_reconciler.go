package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/clock"
	"go.uber.org/zap"
)

// BlockReconcilerConfig tunes the confirmed-block indexing loop.
type BlockReconcilerConfig struct {
	// StartHeight is used when no checkpoint has been persisted yet.
	StartHeight uint64
	// BatchSize is the number of consecutive heights processed per cycle.
	BatchSize    uint64
	PollInterval time.Duration
}

// BlockReconcilerService walks confirmed blocks from the last checkpoint to
// the chain tip and commits their UTXO deltas, advancing the checkpoint only
// after a whole batch succeeded. A failed batch is reprocessed from the
// checkpoint on the next cycle; creates and deletes are idempotent, so
// reprocessing is safe.
type BlockReconcilerService struct {
	logger        *zap.Logger
	metrics       BlockReconcilerMetrics
	sleep         func(context.Context, time.Duration) error
	sleepDuration time.Duration
	pollInterval  time.Duration
	startHeight   uint64
	batchSize     uint64
	source        BlockSource
	repo          UTXORepository
}

// NewBlockReconcilerService builds a BlockReconcilerService with dependencies.
func NewBlockReconcilerService(
	repo UTXORepository,
	source BlockSource,
	metrics BlockReconcilerMetrics,
	cfg BlockReconcilerConfig,
	logger *zap.Logger,
) (*BlockReconcilerService, error) {
	if metrics == nil {
		return nil, errors.New("block reconciler metrics is required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.StartHeight == 0 {
		cfg.StartHeight = defaultStartHeight
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultBlockPollInterval
	}

	return &BlockReconcilerService{
		logger:        logger.Named("blockReconciler"),
		metrics:       metrics,
		sleep:         clock.SleepWithContext,
		sleepDuration: sleepDuration,
		pollInterval:  cfg.PollInterval,
		startHeight:   cfg.StartHeight,
		batchSize:     cfg.BatchSize,
		source:        source,
		repo:          repo,
	}, nil
}

// Run starts the block reconciliation loop until the context is canceled.
func (s *BlockReconcilerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *BlockReconcilerService) run(ctx context.Context) error {
	next, err := s.repo.Checkpoint(ctx)
	if err != nil {
		s.logger.Error("read checkpoint failed", zap.Error(err))
		return err
	}
	if next == 0 {
		next = s.startHeight
	}

	started := time.Now()
	tip, err := s.source.TipHeight(ctx)
	s.metrics.ObserveFetchTip(err, started)
	if err != nil {
		s.logger.Error("fetch chain tip failed", zap.Error(err))
		return err
	}

	if next > tip {
		s.logger.Debug("chain tip reached; sleeping",
			zap.Uint64("next", next),
			zap.Uint64("tip", tip),
			zap.Duration("sleep", s.pollInterval),
		)
		return s.sleep(ctx, s.pollInterval)
	}

	end := next + s.batchSize - 1
	if end > tip {
		end = tip
	}

	s.logger.Info("processing blocks", zap.Uint64("from", next), zap.Uint64("to", end))
	started = time.Now()
	if err = s.processRange(ctx, next, end); err != nil {
		s.metrics.ObserveProcessBatch(err, int(end-next+1), started)
		s.logger.Error("process batch failed", zap.Uint64("from", next), zap.Uint64("to", end), zap.Error(err))
		return err
	}
	s.metrics.ObserveProcessBatch(nil, int(end-next+1), started)

	if err = s.repo.SetCheckpoint(ctx, end+1); err != nil {
		s.logger.Error("advance checkpoint failed", zap.Uint64("height", end+1), zap.Error(err))
		return err
	}
	return nil
}

// processRange applies block deltas strictly in height order: a spend in
// block h+1 may reference an output created in block h. Cancellation is
// observed between cycles in Run, not here, so a started batch drains.
func (s *BlockReconcilerService) processRange(ctx context.Context, from, to uint64) error {
	for height := from; height <= to; height++ {
		if err := s.processHeight(ctx, height); err != nil {
			return err
		}
	}
	return nil
}

func (s *BlockReconcilerService) processHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProcessHeight(err, height, started)
	}()

	delta, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}

	// Creates commit before spends: an output created and spent within the
	// same block must exist transiently to be deletable.
	if err = s.repo.UpsertUTXOs(ctx, delta.Creates, false); err != nil {
		return fmt.Errorf("upsert creates at height %d: %w", height, err)
	}
	if _, err = s.repo.DeleteUTXOs(ctx, delta.Spends, false); err != nil {
		return fmt.Errorf("delete spends at height %d: %w", height, err)
	}
	return nil
}
