package reconciler

import (
	"context"
	"errors"
	"time"

	chainrpc "github.com/goodnatureofminers/utxoset7000-backend/internal/chain"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/clock"
	"go.uber.org/zap"
)

// MempoolReconcilerConfig tunes the pending-transaction indexing loop.
type MempoolReconcilerConfig struct {
	PollInterval time.Duration
}

// MempoolReconcilerService polls the node's pending transaction set and
// applies the deltas of newly arrived transactions. Transactions that left
// the pending set are simply forgotten: either they confirmed and the block
// path owns their outputs now, or they were evicted and their unconfirmed
// outputs get swept when the conflicting spend confirms.
type MempoolReconcilerService struct {
	logger        *zap.Logger
	metrics       MempoolReconcilerMetrics
	sleep         func(context.Context, time.Duration) error
	sleepDuration time.Duration
	pollInterval  time.Duration
	source        MempoolSource
	repo          UTXORepository

	// seenPending tracks transactions already applied, so a cycle only
	// processes arrivals. Run owns the map; no locking needed.
	seenPending map[string]struct{}
}

// NewMempoolReconcilerService builds a MempoolReconcilerService with dependencies.
func NewMempoolReconcilerService(
	repo UTXORepository,
	source MempoolSource,
	metrics MempoolReconcilerMetrics,
	cfg MempoolReconcilerConfig,
	logger *zap.Logger,
) (*MempoolReconcilerService, error) {
	if metrics == nil {
		return nil, errors.New("mempool reconciler metrics is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultMempoolPollInterval
	}

	return &MempoolReconcilerService{
		logger:        logger.Named("mempoolReconciler"),
		metrics:       metrics,
		sleep:         clock.SleepWithContext,
		sleepDuration: sleepDuration,
		pollInterval:  cfg.PollInterval,
		source:        source,
		repo:          repo,
		seenPending:   make(map[string]struct{}),
	}, nil
}

// Run starts the mempool reconciliation loop until the context is canceled.
func (s *MempoolReconcilerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.sleep(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

func (s *MempoolReconcilerService) run(ctx context.Context) error {
	started := time.Now()
	pending, err := s.source.PendingTransactionIDs(ctx)
	s.metrics.ObserveFetchPending(err, started)
	if err != nil {
		s.logger.Error("fetch pending transactions failed", zap.Error(err))
		return err
	}

	current := make(map[string]struct{}, len(pending))
	for _, txid := range pending {
		current[txid] = struct{}{}
	}
	for txid := range s.seenPending {
		if _, ok := current[txid]; !ok {
			delete(s.seenPending, txid)
		}
	}

	var arrived []string
	for _, txid := range pending {
		if _, ok := s.seenPending[txid]; !ok {
			arrived = append(arrived, txid)
		}
	}
	if len(arrived) == 0 {
		return nil
	}

	s.logger.Debug("processing arrived transactions", zap.Int("count", len(arrived)))
	started = time.Now()
	err = s.processArrived(ctx, arrived)
	s.metrics.ObserveProcessCycle(err, len(arrived), started)
	return err
}

// processArrived applies transactions in list order. Cancellation is observed
// between cycles in Run, not here, so a started cycle drains.
func (s *MempoolReconcilerService) processArrived(ctx context.Context, arrived []string) error {
	for _, txid := range arrived {
		if err := s.processTransaction(ctx, txid); err != nil {
			return err
		}
	}
	return nil
}

func (s *MempoolReconcilerService) processTransaction(ctx context.Context, txid string) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProcessTransaction(err, started)
	}()

	delta, err := s.source.FetchTransaction(ctx, txid)
	if err != nil {
		// The transaction confirmed or was evicted between listing and
		// fetching. Leave it unseen: if it reappears it gets refetched.
		if errors.Is(err, chainrpc.ErrEmptyResult) {
			s.logger.Debug("pending transaction vanished before fetch", zap.String("txid", txid))
			return nil
		}
		s.logger.Error("fetch pending transaction failed", zap.String("txid", txid), zap.Error(err))
		return err
	}

	// ifAbsent keeps an already confirmed output from being demoted back to
	// unconfirmed when the mempool view lags the block path.
	if err = s.repo.UpsertUTXOs(ctx, delta.Creates, true); err != nil {
		s.logger.Error("upsert pending creates failed", zap.String("txid", txid), zap.Error(err))
		return err
	}
	if _, err = s.repo.DeleteUTXOs(ctx, delta.Spends, false); err != nil {
		s.logger.Error("delete pending spends failed", zap.String("txid", txid), zap.Error(err))
		return err
	}

	s.seenPending[txid] = struct{}{}
	return nil
}
