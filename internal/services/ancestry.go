package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/observability/metrics"
	"github.com/utxomerit/merit-api-service/internal/types"
	"github.com/utxomerit/merit-api-service/internal/utils"
)

// OldestAncestor walks a transaction's spending ancestry backwards, one
// same-address, same-token parent at a time, and returns the oldest one it
// can still see. It returns nil when the transaction has no traceable
// ancestor at all.
//
// The chain graph is an append-only DAG (every spend postdates its inputs),
// so the walk terminates on its own once ResolveParent comes up empty. The
// nil check before chasing the next txid is what guarantees that; MaxHops
// and the context are extra bounds against pathological histories. Note the
// history the indexer serves may be windowed, so the walk can stop short of
// the true oldest ancestor and the resulting age is a lower bound.
func (s *Services) OldestAncestor(ctx context.Context, startTxid, address string) (*types.ParentRecord, *types.Error) {
	var oldest *types.ParentRecord
	current := startTxid
	maxHops := s.cfg.Merit.MaxHops

	hops := 0
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, types.NewError(http.StatusRequestTimeout, types.RequestTimeout, ctxErr)
		}
		if maxHops > 0 && uint(hops) >= maxHops {
			log.Ctx(ctx).Warn().
				Str("txid", startTxid).
				Uint("maxHops", maxHops).
				Msg("ancestry walk stopped at hop limit")
			break
		}

		parent, err := s.ResolveParent(ctx, current, address)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			break
		}
		oldest = parent
		current = parent.Txid
		hops++

		if delay := s.cfg.Merit.LookupDelay; delay > 0 {
			utils.Sleep(delay)
		}
	}

	metrics.ObserveAncestryWalkDepth(hops)
	return oldest, nil
}
