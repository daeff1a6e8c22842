package ledger

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/types"
)

type countingClient struct {
	transactionCalls int
	historyCalls     int
	heightCalls      int
}

func (c *countingClient) GetBaseURL() string            { return "fake://ledger" }
func (c *countingClient) GetDefaultRequestTimeout() int { return 1000 }

func (c *countingClient) GetHttpClient() *http.Client { return nil }

func (c *countingClient) Normalize(address string) (string, *types.Error) {
	return address, nil
}

func (c *countingClient) GetUtxos(_ context.Context, _ string) (*AddressUtxos, *types.Error) {
	return &AddressUtxos{}, nil
}

func (c *countingClient) GetTransactions(_ context.Context, txids []string) ([]types.TransactionRecord, *types.Error) {
	c.transactionCalls++
	records := make([]types.TransactionRecord, 0, len(txids))
	for _, txid := range txids {
		records = append(records, types.TransactionRecord{Txid: txid})
	}
	return records, nil
}

func (c *countingClient) GetTransactionHistory(_ context.Context, _ string) ([]types.HistoryEntry, *types.Error) {
	c.historyCalls++
	return []types.HistoryEntry{{Txid: "aa01", BlockHeight: 665000}}, nil
}

func (c *countingClient) GetChainHeight(_ context.Context) (uint64, *types.Error) {
	c.heightCalls++
	return 665800, nil
}

func newTestCachedClient(inner Client) *CachedClient {
	return NewCachedClient(inner, &config.CacheConfig{TTL: time.Minute, Capacity: 100})
}

func TestCachedClientCachesHistory(t *testing.T) {
	inner := &countingClient{}
	cached := newTestCachedClient(inner)
	defer cached.Stop()

	ctx := context.Background()
	first, err := cached.GetTransactionHistory(ctx, "addr")
	require.Nil(t, err)
	second, err := cached.GetTransactionHistory(ctx, "addr")
	require.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.historyCalls)
}

func TestCachedClientFetchesOnlyMissingTransactions(t *testing.T) {
	inner := &countingClient{}
	cached := newTestCachedClient(inner)
	defer cached.Stop()

	ctx := context.Background()
	_, err := cached.GetTransactions(ctx, []string{"aa01", "bb02"})
	require.Nil(t, err)
	assert.Equal(t, 1, inner.transactionCalls)

	// Both txids are now cached; a repeat lookup never hits the inner client.
	records, err := cached.GetTransactions(ctx, []string{"aa01", "bb02"})
	require.Nil(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, inner.transactionCalls)
}

func TestCachedClientNeverCachesChainHeight(t *testing.T) {
	inner := &countingClient{}
	cached := newTestCachedClient(inner)
	defer cached.Stop()

	ctx := context.Background()
	_, err := cached.GetChainHeight(ctx)
	require.Nil(t, err)
	_, err = cached.GetChainHeight(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, inner.heightCalls)
}
