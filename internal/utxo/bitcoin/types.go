package bitcoin

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of node RPC calls the sources consume.
	RPCClient interface {
		GetChainHeight(ctx context.Context) (uint64, error)
		GetBlock(ctx context.Context, height uint64) (*btcjson.GetBlockVerboseResult, error)
		GetRawTransaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
		GetPendingTransactionIDs(ctx context.Context) ([]string, error)
	}

	// ScriptDecoder resolves output scripts to addresses.
	ScriptDecoder interface {
		decodeAddresses(vout btcjson.Vout) ([]string, error)
	}

	// UTXOConverter turns raw RPC transactions into domain UTXO records.
	UTXOConverter interface {
		Convert(tx btcjson.TxRawResult, blockHeight uint64, confirmed bool) ([]model.UTXO, error)
	}
)
