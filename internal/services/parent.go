package services

import (
	"context"

	"github.com/utxomerit/merit-api-service/internal/types"
)

// ResolveParent finds the spent input of a transaction that is a
// same-address, same-token UTXO, using the address's transaction history as
// the index of what the address has ever touched. It returns nil when no
// input qualifies; absence is a normal outcome, not an error.
//
// When several inputs qualify, the last valid match in input order wins.
func (s *Services) ResolveParent(ctx context.Context, txid, address string) (*types.ParentRecord, *types.Error) {
	childTxs, err := s.Clients.Ledger.GetTransactions(ctx, []string{txid})
	if err != nil {
		return nil, err
	}
	if len(childTxs) == 0 {
		return nil, nil
	}
	child := childTxs[0]
	if len(child.Inputs) == 0 {
		return nil, nil
	}

	history, err := s.Clients.Ledger.GetTransactionHistory(ctx, address)
	if err != nil {
		return nil, err
	}

	var parent *types.ParentRecord
	for _, input := range child.Inputs {
		for _, entry := range history {
			if entry.Txid != input.Txid {
				continue
			}
			records, err := s.Clients.Ledger.GetTransactions(ctx, []string{entry.Txid})
			if err != nil {
				return nil, err
			}
			if len(records) == 0 {
				continue
			}
			candidate := records[0]
			if candidate.TokenID == child.TokenID && candidate.ValidTokenTx {
				parent = &types.ParentRecord{
					Txid:        entry.Txid,
					Vout:        input.Vout,
					BlockHeight: entry.BlockHeight,
				}
			}
		}
	}
	return parent, nil
}
