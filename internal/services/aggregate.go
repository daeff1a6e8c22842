package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/types"
)

type AddressMeritPublic struct {
	Address   string  `json:"address"`
	TokenID   string  `json:"token_id,omitempty"`
	Merit     float64 `json:"merit"`
	UtxoCount int     `json:"utxo_count"`
}

type UtxoMeritPublic struct {
	Txid        string  `json:"txid"`
	Vout        uint32  `json:"vout"`
	BlockHeight uint64  `json:"block_height"`
	TokenID     string  `json:"token_id,omitempty"`
	Quantity    float64 `json:"quantity"`
	AgeDays     float64 `json:"age_days"`
	Merit       float64 `json:"merit"`
}

// AggregateMerit is the externally invoked entry point of the merit core:
// one address, one optional token, one number. An address with no matching
// UTXOs scores 0.
func (s *Services) AggregateMerit(ctx context.Context, address, tokenID string) (float64, *types.Error) {
	results, err := s.addressMeritResults(ctx, address, tokenID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, result := range results {
		total += result.Merit
	}

	log.Ctx(ctx).Debug().
		Str("address", address).
		Str("tokenID", tokenID).
		Int("utxoCount", len(results)).
		Float64("merit", total).
		Msg("aggregated merit")
	return total, nil
}

// GetAddressMerit returns the aggregate together with the per-UTXO detail.
func (s *Services) GetAddressMerit(
	ctx context.Context, address, tokenID string,
) (*AddressMeritPublic, []UtxoMeritPublic, *types.Error) {
	results, err := s.addressMeritResults(ctx, address, tokenID)
	if err != nil {
		return nil, nil, err
	}

	details := make([]UtxoMeritPublic, 0, len(results))
	var total float64
	for _, result := range results {
		total += result.Merit
		detail := UtxoMeritPublic{
			Txid:        result.Utxo.Txid,
			Vout:        result.Utxo.Vout,
			BlockHeight: result.Utxo.BlockHeight,
			Quantity:    float64(result.Utxo.NativeValue) / 1e8,
			AgeDays:     result.AgeDays,
			Merit:       result.Merit,
		}
		if result.Utxo.Token != nil {
			detail.TokenID = result.Utxo.Token.TokenID
			detail.Quantity = result.Utxo.Token.Quantity
		}
		details = append(details, detail)
	}

	summary := &AddressMeritPublic{
		Address:   address,
		TokenID:   tokenID,
		Merit:     total,
		UtxoCount: len(results),
	}
	return summary, details, nil
}

func (s *Services) addressMeritResults(
	ctx context.Context, address, tokenID string,
) ([]types.MeritResult, *types.Error) {
	if address == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "address is required",
		)
	}

	normalized, err := s.Clients.Ledger.Normalize(address)
	if err != nil {
		return nil, err
	}

	utxos, err := s.SelectUtxos(ctx, normalized, tokenID)
	if err != nil {
		return nil, err
	}
	if len(utxos) == 0 {
		return nil, nil
	}

	currentHeight, err := s.Clients.Ledger.GetChainHeight(ctx)
	if err != nil {
		return nil, err
	}

	return s.ComputeMerit(ctx, utxos, normalized, tokenID, currentHeight)
}
