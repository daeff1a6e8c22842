package ledger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	baseclient "github.com/utxomerit/merit-api-service/internal/clients/base"
	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/observability/metrics"
	"github.com/utxomerit/merit-api-service/internal/types"
	"github.com/utxomerit/merit-api-service/internal/utils"
)

// LedgerClient talks to the ledger indexer over HTTP.
type LedgerClient struct {
	config     *config.LedgerConfig
	httpClient *http.Client
}

func NewLedgerClient(cfg *config.LedgerConfig) *LedgerClient {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
	return &LedgerClient{
		config:     cfg,
		httpClient: httpClient,
	}
}

// Necessary for the base client to work
func (c *LedgerClient) GetBaseURL() string {
	return c.config.Endpoint
}

func (c *LedgerClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *LedgerClient) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *LedgerClient) Normalize(address string) (string, *types.Error) {
	normalized, err := utils.NormalizeAddress(address)
	if err != nil {
		return "", types.NewError(http.StatusBadRequest, types.AddressFormatError, err)
	}
	return normalized, nil
}

func (c *LedgerClient) GetUtxos(ctx context.Context, address string) (*AddressUtxos, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf("/v1/address/%s/utxos", url.PathEscape(address)),
	}

	timer := metrics.StartClientRequestDurationTimer("ledger", "get_utxos")
	utxos, err := baseclient.SendRequest[any, AddressUtxos](ctx, c, http.MethodGet, opts, nil)
	timer(err == nil)
	if err != nil {
		return nil, asDataSourceError(err)
	}
	return utxos, nil
}

type transactionsRequest struct {
	Txids []string `json:"txids"`
}

func (c *LedgerClient) GetTransactions(ctx context.Context, txids []string) ([]types.TransactionRecord, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/transactions",
	}
	input := &transactionsRequest{Txids: txids}

	timer := metrics.StartClientRequestDurationTimer("ledger", "get_transactions")
	records, err := baseclient.SendRequest[transactionsRequest, []types.TransactionRecord](
		ctx, c, http.MethodPost, opts, input,
	)
	timer(err == nil)
	if err != nil {
		return nil, asDataSourceError(err)
	}
	return *records, nil
}

func (c *LedgerClient) GetTransactionHistory(ctx context.Context, address string) ([]types.HistoryEntry, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf("/v1/address/%s/history", url.PathEscape(address)),
	}

	timer := metrics.StartClientRequestDurationTimer("ledger", "get_history")
	history, err := baseclient.SendRequest[any, []types.HistoryEntry](ctx, c, http.MethodGet, opts, nil)
	timer(err == nil)
	if err != nil {
		return nil, asDataSourceError(err)
	}
	return *history, nil
}

type chainHeightResponse struct {
	Height uint64 `json:"height"`
}

func (c *LedgerClient) GetChainHeight(ctx context.Context) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/chain/height",
	}

	timer := metrics.StartClientRequestDurationTimer("ledger", "get_chain_height")
	resp, err := baseclient.SendRequest[any, chainHeightResponse](ctx, c, http.MethodGet, opts, nil)
	timer(err == nil)
	if err != nil {
		return 0, asDataSourceError(err)
	}
	return resp.Height, nil
}

// asDataSourceError recodes a transport failure as a data source error so
// callers can tell ledger retrieval failures apart from their own. Timeouts
// keep their code so cancellation propagates as cancellation.
func asDataSourceError(err *types.Error) *types.Error {
	if err.ErrorCode == types.RequestTimeout {
		return err
	}
	return types.NewError(err.StatusCode, types.DataSourceError, err.Err)
}
