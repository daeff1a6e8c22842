package services

import (
	"context"
	"net/http"

	"github.com/utxomerit/merit-api-service/internal/clients"
	"github.com/utxomerit/merit-api-service/internal/clients/ledger"
	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/types"
)

// fakeLedgerClient is an in-memory ledger.Client backed by maps, so tests
// can lay out arbitrary ancestry DAGs without a network.
type fakeLedgerClient struct {
	utxoSets     map[string]*ledger.AddressUtxos
	transactions map[string]types.TransactionRecord
	histories    map[string][]types.HistoryEntry
	chainHeight  uint64

	// historyWindow bounds GetTransactionHistory to the first N entries,
	// mimicking an indexer that only serves a recent window. 0 = unbounded.
	historyWindow int

	utxosErr   *types.Error
	txErr      *types.Error
	historyErr *types.Error
	heightErr  *types.Error

	transactionCalls int
	historyCalls     int
}

func newFakeLedgerClient() *fakeLedgerClient {
	return &fakeLedgerClient{
		utxoSets:     make(map[string]*ledger.AddressUtxos),
		transactions: make(map[string]types.TransactionRecord),
		histories:    make(map[string][]types.HistoryEntry),
	}
}

func (f *fakeLedgerClient) GetBaseURL() string            { return "fake://ledger" }
func (f *fakeLedgerClient) GetDefaultRequestTimeout() int { return 1000 }
func (f *fakeLedgerClient) GetHttpClient() *http.Client   { return nil }

func (f *fakeLedgerClient) Normalize(address string) (string, *types.Error) {
	if address == "malformed" {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.AddressFormatError, "invalid address",
		)
	}
	return address, nil
}

func (f *fakeLedgerClient) GetUtxos(_ context.Context, address string) (*ledger.AddressUtxos, *types.Error) {
	if f.utxosErr != nil {
		return nil, f.utxosErr
	}
	if set, ok := f.utxoSets[address]; ok {
		return set, nil
	}
	return &ledger.AddressUtxos{TokenUtxos: map[string][]types.Utxo{}}, nil
}

func (f *fakeLedgerClient) GetTransactions(_ context.Context, txids []string) ([]types.TransactionRecord, *types.Error) {
	f.transactionCalls++
	if f.txErr != nil {
		return nil, f.txErr
	}
	var records []types.TransactionRecord
	for _, txid := range txids {
		if record, ok := f.transactions[txid]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (f *fakeLedgerClient) GetTransactionHistory(_ context.Context, address string) ([]types.HistoryEntry, *types.Error) {
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	history := f.histories[address]
	if f.historyWindow > 0 && len(history) > f.historyWindow {
		history = history[:f.historyWindow]
	}
	return history, nil
}

func (f *fakeLedgerClient) GetChainHeight(_ context.Context) (uint64, *types.Error) {
	if f.heightErr != nil {
		return 0, f.heightErr
	}
	return f.chainHeight, nil
}

func testMeritConfig() config.MeritConfig {
	return config.MeritConfig{
		AgingEnabled:    true,
		MaxHops:         0,
		WalkConcurrency: 2,
	}
}

func newTestServices(fake *fakeLedgerClient, meritCfg config.MeritConfig) *Services {
	return &Services{
		Clients: &clients.Clients{Ledger: fake},
		cfg:     &config.Config{Merit: meritCfg},
	}
}
