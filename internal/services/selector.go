package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/types"
)

// SelectUtxos fetches the unspent outputs of an address and narrows them to
// the ones the merit calculation cares about: with a token id, the token
// UTXOs of exactly that token; without one, the plain coin UTXOs. The token
// filter is exact-match on the id; earlier generations of this system
// matched on substring containment, which is not reproduced here.
func (s *Services) SelectUtxos(ctx context.Context, address, tokenID string) ([]types.Utxo, *types.Error) {
	normalized, err := s.Clients.Ledger.Normalize(address)
	if err != nil {
		return nil, err
	}

	utxoSet, err := s.Clients.Ledger.GetUtxos(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if tokenID == "" {
		return utxoSet.NativeUtxos, nil
	}

	selected := utxoSet.TokenUtxos[tokenID]
	log.Ctx(ctx).Debug().
		Str("address", normalized).
		Str("tokenID", tokenID).
		Int("count", len(selected)).
		Msg("selected token utxos")
	return selected, nil
}
