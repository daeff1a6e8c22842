package types

// TransactionRecord is a read-only snapshot of a transaction as reported by
// the ledger indexer. TokenID is empty for transactions that do not move any
// token; ValidTokenTx reports whether the indexer accepted the transaction as
// a well-formed token transfer.
type TransactionRecord struct {
	Txid         string     `json:"txid"`
	TokenID      string     `json:"token_id,omitempty"`
	ValidTokenTx bool       `json:"valid_token_tx"`
	Inputs       []Outpoint `json:"inputs"`
}

// HistoryEntry is one row of an address's transaction history. The indexer
// may bound the history to a recent window, in which case ancestors older
// than the window are invisible to the ancestry walk.
type HistoryEntry struct {
	Txid        string `json:"txid"`
	BlockHeight uint64 `json:"block_height"`
}

// ParentRecord points at the spent output the ancestry walk resolved as the
// same-address, same-token parent of a transaction.
type ParentRecord struct {
	Txid        string `json:"txid"`
	Vout        uint32 `json:"vout"`
	BlockHeight uint64 `json:"block_height"`
}
