package bitcoin

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/chain"
)

// MempoolSource implements chain.MempoolSource over the node RPC.
type MempoolSource struct {
	rpc       RPCClient
	converter UTXOConverter
}

// NewMempoolSource creates a MempoolSource.
func NewMempoolSource(converter UTXOConverter, rpc RPCClient) *MempoolSource {
	return &MempoolSource{
		rpc:       rpc,
		converter: converter,
	}
}

// PendingTransactionIDs returns the txids currently in the node mempool.
func (s *MempoolSource) PendingTransactionIDs(ctx context.Context) ([]string, error) {
	return s.rpc.GetPendingTransactionIDs(ctx)
}

// FetchTransaction retrieves a pending transaction and derives its UTXO
// deltas. Created outputs are unconfirmed with block height 0.
func (s *MempoolSource) FetchTransaction(ctx context.Context, txid string) (*chain.TransactionDelta, error) {
	tx, err := s.rpc.GetRawTransaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("get pending transaction %s: %w", txid, err)
	}

	creates, err := s.converter.Convert(*tx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("convert outputs of %s: %w", txid, err)
	}

	return &chain.TransactionDelta{
		TxID:    tx.Txid,
		Creates: creates,
		Spends:  SpendIDs(*tx),
	}, nil
}
