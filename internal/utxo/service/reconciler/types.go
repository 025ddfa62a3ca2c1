// Package reconciler keeps the persisted UTXO set consistent with the
// confirmed chain and the node mempool.
package reconciler

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		TipHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.BlockDelta, error)
	}

	MempoolSource interface {
		PendingTransactionIDs(ctx context.Context) ([]string, error)
		FetchTransaction(ctx context.Context, txid string) (*chain.TransactionDelta, error)
	}

	UTXORepository interface {
		UpsertUTXOs(ctx context.Context, utxos []model.UTXO, ifAbsent bool) error
		DeleteUTXOs(ctx context.Context, ids []string, onlyUnconfirmed bool) (int64, error)
		Checkpoint(ctx context.Context) (uint64, error)
		SetCheckpoint(ctx context.Context, height uint64) error
	}

	BlockReconcilerMetrics interface {
		ObserveFetchTip(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
	}

	MempoolReconcilerMetrics interface {
		ObserveFetchPending(err error, started time.Time)
		ObserveProcessCycle(err error, arrived int, started time.Time)
		ObserveProcessTransaction(err error, started time.Time)
	}
)
