package bitcoin

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
)

// BlockSource implements chain.BlockSource over the node RPC.
type BlockSource struct {
	rpc       RPCClient
	converter UTXOConverter
}

// NewBlockSource creates a BlockSource.
func NewBlockSource(converter UTXOConverter, rpc RPCClient) *BlockSource {
	return &BlockSource{
		rpc:       rpc,
		converter: converter,
	}
}

// TipHeight returns the current chain tip height from the node.
func (s *BlockSource) TipHeight(ctx context.Context) (uint64, error) {
	return s.rpc.GetChainHeight(ctx)
}

// FetchBlock retrieves the block at the given height and derives its UTXO
// deltas. Transactions are fetched strictly in block order; the coinbase
// transaction contributes created outputs but no spends.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*chain.BlockDelta, error) {
	block, err := s.rpc.GetBlock(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("get block at height %d: %w", height, err)
	}
	blockHeight, err := safe.Uint64(block.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", block.Hash, err)
	}
	if blockHeight != height {
		return nil, fmt.Errorf("requested height %d, node returned block at %d", height, blockHeight)
	}

	delta := &chain.BlockDelta{
		Height: height,
		Hash:   block.Hash,
	}

	for i, txid := range block.Tx {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		tx, err := s.rpc.GetRawTransaction(ctx, txid)
		if err != nil {
			return nil, fmt.Errorf("get transaction %s at height %d: %w", txid, height, err)
		}

		creates, err := s.converter.Convert(*tx, height, true)
		if err != nil {
			return nil, fmt.Errorf("convert outputs of %s: %w", txid, err)
		}
		delta.Creates = append(delta.Creates, creates...)

		if i == 0 {
			continue
		}
		delta.Spends = append(delta.Spends, SpendIDs(*tx)...)
	}

	return delta, nil
}
