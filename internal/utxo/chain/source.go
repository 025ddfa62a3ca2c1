// Package chain defines interfaces and structs shared between UTXO reconciliation components.
package chain

import (
	"context"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

// BlockSource provides confirmed block data for the block reconciler.
type BlockSource interface {
	TipHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*BlockDelta, error)
}

// MempoolSource provides pending transaction data for the mempool reconciler.
type MempoolSource interface {
	PendingTransactionIDs(ctx context.Context) ([]string, error)
	FetchTransaction(ctx context.Context, txid string) (*TransactionDelta, error)
}

// BlockDelta holds the UTXO set changes produced by one confirmed block.
type BlockDelta struct {
	Height  uint64
	Hash    string
	Creates []model.UTXO
	Spends  []string
}

// TransactionDelta holds the UTXO set changes produced by one pending transaction.
type TransactionDelta struct {
	TxID    string
	Creates []model.UTXO
	Spends  []string
}
