package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/utxomerit/merit-api-service/internal/types"
	"github.com/utxomerit/merit-api-service/internal/utils"
)

// BlocksPerDay converts block deltas to days (10 minute target spacing).
const BlocksPerDay = 144

// ComputeMerit scores each UTXO as quantity held times days held. With
// aging enabled the age comes from the oldest traceable same-address
// ancestor, so shuffling funds between own addresses does not reset it; an
// unconfirmed UTXO (height 0) always ages 0. With aging disabled the merit
// is the plain held quantity.
//
// Ancestry walks for distinct UTXOs are independent and run concurrently up
// to the configured limit; the first failure cancels the rest, no partial
// results are returned.
func (s *Services) ComputeMerit(
	ctx context.Context, utxos []types.Utxo, address, tokenID string, currentHeight uint64,
) ([]types.MeritResult, *types.Error) {
	for i := range utxos {
		if err := utxos[i].Validate(); err != nil {
			return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
		}
	}

	results := make([]types.MeritResult, len(utxos))

	if !s.cfg.Merit.AgingEnabled {
		for i := range utxos {
			unit := unitMerit(&utxos[i], tokenID)
			results[i] = types.MeritResult{Utxo: utxos[i], AgeDays: 0, Merit: unit}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Merit.WalkConcurrency)
	for i := range utxos {
		i := i
		g.Go(func() error {
			utxo := utxos[i]
			ancestor, err := s.OldestAncestor(gctx, utxo.Txid, address)
			if err != nil {
				if !s.cfg.Merit.LenientAncestry {
					return err
				}
				// Opt-in resilience: score the UTXO as brand new rather
				// than failing the whole aggregation.
				log.Ctx(ctx).Warn().Err(err).
					Str("txid", utxo.Txid).
					Msg("ancestry resolution failed, treating utxo age as 0")
				results[i] = types.MeritResult{Utxo: utxo}
				return nil
			}

			effectiveHeight := utxo.BlockHeight
			if ancestor != nil {
				effectiveHeight = ancestor.BlockHeight
			}

			var ageDays float64
			if utxo.BlockHeight != 0 && currentHeight > effectiveHeight {
				ageDays = utils.Floor2(float64(currentHeight-effectiveHeight) / BlocksPerDay)
			}

			unit := unitMerit(&utxo, tokenID)
			results[i] = types.MeritResult{
				Utxo:    utxo,
				AgeDays: ageDays,
				Merit:   unit * ageDays,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if typedErr, ok := err.(*types.Error); ok {
			return nil, typedErr
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("merit computation failed: %w", err))
	}
	return results, nil
}

// unitMerit is the quantity side of the score: the token amount when a
// token is selected, otherwise the native value in whole coins.
func unitMerit(utxo *types.Utxo, tokenID string) float64 {
	if tokenID != "" && utxo.Token != nil {
		return utxo.Token.Quantity
	}
	return float64(utxo.NativeValue) / 1e8
}
