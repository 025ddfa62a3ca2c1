// Package transport exposes the HTTP API of the indexer.
package transport

import (
	"context"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UTXOStore serves paginated UTXO pages per address.
	UTXOStore interface {
		UTXOsByAddress(ctx context.Context, address string, limit, offset uint64, sortByValueDesc bool) ([]model.UTXO, uint64, error)
	}

	// TransactionBroadcaster forwards raw transactions to the node.
	TransactionBroadcaster interface {
		SubmitRawTransaction(ctx context.Context, rawTx string) (string, error)
	}
)
