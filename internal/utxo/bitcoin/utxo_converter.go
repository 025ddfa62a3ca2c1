package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/pkg/safe"
)

// utxoConverter converts rpc tx outputs to UTXO records using a decoder.
type utxoConverter struct {
	decoder ScriptDecoder
}

// NewUTXOConverter constructs a converter that turns raw RPC outputs into UTXO records.
func NewUTXOConverter(decoder ScriptDecoder) UTXOConverter {
	return &utxoConverter{decoder: decoder}
}

// Convert produces one UTXO per output that resolves to an address. Outputs
// with no resolvable address are dropped, never persisted. Multi-address
// scripts resolve to their first address.
func (c *utxoConverter) Convert(tx btcjson.TxRawResult, blockHeight uint64, confirmed bool) ([]model.UTXO, error) {
	utxos := make([]model.UTXO, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return nil, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}

		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", tx.Txid, err)
		}

		value, err := toSmallestUnit(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", tx.Txid, idx, err)
		}

		// Undecodable scripts count as unresolvable outputs, same as scripts
		// that carry no address.
		addresses, err := c.decoder.decodeAddresses(vout)
		if err != nil || len(addresses) == 0 {
			continue
		}

		utxos = append(utxos, model.UTXO{
			ID:          model.OutpointID(tx.Txid, index),
			Value:       value,
			Address:     addresses[0],
			BlockHeight: blockHeight,
			Confirmed:   confirmed,
		})
	}
	return utxos, nil
}

// SpendIDs returns the outpoint ids consumed by a transaction's inputs.
// Coinbase inputs carry no prior output and contribute nothing.
func SpendIDs(tx btcjson.TxRawResult) []string {
	ids := make([]string, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if vin.IsCoinBase() || vin.Txid == "" {
			continue
		}
		ids = append(ids, model.OutpointID(vin.Txid, vin.Vout))
	}
	return ids
}

// toSmallestUnit converts a coin amount to the chain's smallest currency unit
// with overflow checks.
func toSmallestUnit(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}
