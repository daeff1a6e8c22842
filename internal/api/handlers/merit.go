package handlers

import (
	"net/http"

	"github.com/utxomerit/merit-api-service/internal/types"
)

// GetAddressMerit gets the aggregate merit score of an address
// @Summary Get Address Merit
// @Description Computes the merit score of an address: quantity held times days held,
// @Description summed over the address's unspent outputs. Age is taken from the oldest
// @Description traceable same-address ancestor of each output when aging is enabled.
// @Produce json
// @Param address query string true "Address to score"
// @Param token_id query string false "Token id; omit to score the native coin balance"
// @Success 200 {object} PublicResponse[services.AddressMeritPublic] "Aggregate merit for the address"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/merit [get]
func (h *Handler) GetAddressMerit(request *http.Request) (*Result, *types.Error) {
	address, tokenID, err := parseMeritQuery(request)
	if err != nil {
		return nil, err
	}

	summary, _, err := h.services.GetAddressMerit(request.Context(), address, tokenID)
	if err != nil {
		return nil, err
	}

	return NewResult(summary), nil
}

// GetAddressMeritUtxos gets the per-UTXO merit breakdown of an address
// @Summary Get Address Merit UTXO Breakdown
// @Description Returns the merit score of every matching unspent output of the address,
// @Description each with its computed age in days.
// @Produce json
// @Param address query string true "Address to score"
// @Param token_id query string false "Token id; omit to score the native coin balance"
// @Success 200 {object} PublicResponse[[]services.UtxoMeritPublic]{array} "Per-UTXO merit detail"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/merit/utxos [get]
func (h *Handler) GetAddressMeritUtxos(request *http.Request) (*Result, *types.Error) {
	address, tokenID, err := parseMeritQuery(request)
	if err != nil {
		return nil, err
	}

	_, details, err := h.services.GetAddressMerit(request.Context(), address, tokenID)
	if err != nil {
		return nil, err
	}

	return NewResult(details), nil
}
