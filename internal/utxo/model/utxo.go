// Package model defines domain models for the UTXO set.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Network identifies the chain network the indexer follows.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// CheckpointID is the key of the singleton checkpoint record.
const CheckpointID = "current_indexing_checkpoint"

// outpointSeparator joins txid and output index into a UTXO id.
const outpointSeparator = ":"

// UTXO is an unspent transaction output tracked by the indexer.
// BlockHeight is 0 while the creating transaction is unconfirmed.
type UTXO struct {
	ID          string
	Value       uint64
	Address     string
	BlockHeight uint64
	Confirmed   bool
}

// OutpointID builds the store key for a transaction output.
func OutpointID(txid string, index uint32) string {
	return txid + outpointSeparator + strconv.FormatUint(uint64(index), 10)
}

// SplitOutpointID decomposes a UTXO id into txid and output index.
func SplitOutpointID(id string) (string, uint32, error) {
	txid, rawIndex, ok := strings.Cut(id, outpointSeparator)
	if !ok {
		return "", 0, fmt.Errorf("utxo id %q has no separator", id)
	}
	if _, err := chainhash.NewHashFromStr(txid); err != nil {
		return "", 0, fmt.Errorf("utxo id %q txid: %w", id, err)
	}
	index, err := strconv.ParseUint(rawIndex, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("utxo id %q output index: %w", id, err)
	}
	return txid, uint32(index), nil
}
