package ledger

import (
	"context"
	"net/http"

	"github.com/utxomerit/merit-api-service/internal/types"
)

// AddressUtxos is the full unspent output set of one address, split the way
// the indexer reports it: plain coin outputs on one side, token outputs
// grouped by token id on the other.
type AddressUtxos struct {
	NativeUtxos []types.Utxo            `json:"native_utxos"`
	TokenUtxos  map[string][]types.Utxo `json:"token_utxos"`
}

// Client is the ledger data source contract the merit core computes over.
// Implementations retrieve immutable chain facts and own any retry/backoff
// policy; the core propagates their failures unchanged.
//
// GetTransactionHistory may be bounded to a recent window on the indexer
// side. Ancestors outside the window are invisible to the ancestry walk, so
// any age computed from a windowed history is a lower bound.
type Client interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	// Normalize canonicalizes an address, returning an ADDRESS_FORMAT_ERROR
	// typed error on malformed input.
	Normalize(address string) (string, *types.Error)
	GetUtxos(ctx context.Context, address string) (*AddressUtxos, *types.Error)
	GetTransactions(ctx context.Context, txids []string) ([]types.TransactionRecord, *types.Error)
	GetTransactionHistory(ctx context.Context, address string) ([]types.HistoryEntry, *types.Error)
	GetChainHeight(ctx context.Context) (uint64, *types.Error)
}
