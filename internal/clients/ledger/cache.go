package ledger

import (
	"context"
	"net/http"

	"github.com/jellydator/ttlcache/v3"

	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/types"
)

// CachedClient is a read-through cache over a ledger client. An ancestry
// walk refetches the same address history on every hop and revisits
// transactions shared between UTXOs of one address, so transactions and
// histories are cached; UTXO sets and the chain height are always fetched
// fresh.
//
// Transactions and history rows are immutable chain facts, but a history
// entry's block height moves from 0 to a real height on confirmation, hence
// a TTL rather than caching forever.
type CachedClient struct {
	inner        Client
	transactions *ttlcache.Cache[string, types.TransactionRecord]
	histories    *ttlcache.Cache[string, []types.HistoryEntry]
}

func NewCachedClient(inner Client, cfg *config.CacheConfig) *CachedClient {
	transactions := ttlcache.New[string, types.TransactionRecord](
		ttlcache.WithTTL[string, types.TransactionRecord](cfg.TTL),
		ttlcache.WithCapacity[string, types.TransactionRecord](cfg.Capacity),
	)
	histories := ttlcache.New[string, []types.HistoryEntry](
		ttlcache.WithTTL[string, []types.HistoryEntry](cfg.TTL),
		ttlcache.WithCapacity[string, []types.HistoryEntry](cfg.Capacity),
	)
	go transactions.Start()
	go histories.Start()

	return &CachedClient{
		inner:        inner,
		transactions: transactions,
		histories:    histories,
	}
}

func (c *CachedClient) GetBaseURL() string {
	return c.inner.GetBaseURL()
}

func (c *CachedClient) GetDefaultRequestTimeout() int {
	return c.inner.GetDefaultRequestTimeout()
}

func (c *CachedClient) GetHttpClient() *http.Client {
	return c.inner.GetHttpClient()
}

func (c *CachedClient) Normalize(address string) (string, *types.Error) {
	return c.inner.Normalize(address)
}

func (c *CachedClient) GetUtxos(ctx context.Context, address string) (*AddressUtxos, *types.Error) {
	return c.inner.GetUtxos(ctx, address)
}

func (c *CachedClient) GetTransactions(ctx context.Context, txids []string) ([]types.TransactionRecord, *types.Error) {
	records := make([]types.TransactionRecord, 0, len(txids))
	var missing []string
	for _, txid := range txids {
		if item := c.transactions.Get(txid); item != nil {
			records = append(records, item.Value())
			continue
		}
		missing = append(missing, txid)
	}
	if len(missing) == 0 {
		return records, nil
	}

	fetched, err := c.inner.GetTransactions(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, record := range fetched {
		c.transactions.Set(record.Txid, record, ttlcache.DefaultTTL)
		records = append(records, record)
	}
	return records, nil
}

func (c *CachedClient) GetTransactionHistory(ctx context.Context, address string) ([]types.HistoryEntry, *types.Error) {
	if item := c.histories.Get(address); item != nil {
		return item.Value(), nil
	}

	history, err := c.inner.GetTransactionHistory(ctx, address)
	if err != nil {
		return nil, err
	}
	c.histories.Set(address, history, ttlcache.DefaultTTL)
	return history, nil
}

func (c *CachedClient) GetChainHeight(ctx context.Context) (uint64, *types.Error) {
	return c.inner.GetChainHeight(ctx)
}

// Stop shuts down the cache janitors.
func (c *CachedClient) Stop() {
	c.transactions.Stop()
	c.histories.Stop()
}
