package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
)

// GetChainHeight returns the current chain tip height.
func (c *Client) GetChainHeight(ctx context.Context) (uint64, error) {
	raw, err := c.call(ctx, "get_block_count", "getblockcount", nil)
	if err != nil {
		return 0, err
	}
	var count int64
	if err = json.Unmarshal(raw, &count); err != nil {
		return 0, fmt.Errorf("decode getblockcount result: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count out of range: %w", err)
	}
	return height, nil
}

// GetBlock returns the verbose block at the given height. The node accepts
// the height as a decimal string in place of a block hash.
func (c *Client) GetBlock(ctx context.Context, height uint64) (*btcjson.GetBlockVerboseResult, error) {
	raw, err := c.call(ctx, "get_block", "getblock", []any{strconv.FormatUint(height, 10)})
	if err != nil {
		return nil, err
	}
	var block btcjson.GetBlockVerboseResult
	if err = json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("decode getblock result at height %d: %w", height, err)
	}
	return &block, nil
}

// GetRawTransaction returns the decoded transaction for a txid.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	raw, err := c.call(ctx, "get_raw_transaction", "getrawtransaction", []any{txid, 1})
	if err != nil {
		return nil, err
	}
	var tx btcjson.TxRawResult
	if err = json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("decode getrawtransaction result for %s: %w", txid, err)
	}
	return &tx, nil
}

// GetPendingTransactionIDs returns the txids currently in the node mempool.
func (c *Client) GetPendingTransactionIDs(ctx context.Context) ([]string, error) {
	raw, err := c.call(ctx, "get_raw_mempool", "getrawmempool", nil)
	if err != nil {
		return nil, err
	}
	var txids []string
	if err = json.Unmarshal(raw, &txids); err != nil {
		return nil, fmt.Errorf("decode getrawmempool result: %w", err)
	}
	return txids, nil
}
