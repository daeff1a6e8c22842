package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/queue/client"
	"github.com/utxomerit/merit-api-service/internal/types"
)

// MeritRequestHandler scores the single address named in the message and
// publishes the result. Malformed messages come back as 4xx typed errors so
// the dispatcher can dead-letter them instead of redelivering forever.
func (h *QueueHandler) MeritRequestHandler(ctx context.Context, messageBody string) *types.Error {
	var request client.MeritRequestMessage
	if err := json.Unmarshal([]byte(messageBody), &request); err != nil {
		return types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	if request.Address == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "merit request has no address",
		)
	}

	merit, err := h.Services.AggregateMerit(ctx, request.Address, request.TokenId)
	if err != nil {
		return err
	}

	result := client.MeritResultMessage{
		RequestId:  request.RequestId,
		Address:    request.Address,
		TokenId:    request.TokenId,
		Merit:      merit,
		ComputedAt: time.Now().Unix(),
	}
	resultBody, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		return types.NewInternalServiceError(marshalErr)
	}

	if sendErr := h.resultClient.SendMessage(string(resultBody)); sendErr != nil {
		log.Ctx(ctx).Error().Err(sendErr).
			Str("requestId", request.RequestId).
			Msg("error while publishing merit result")
		return types.NewInternalServiceError(sendErr)
	}
	return nil
}
