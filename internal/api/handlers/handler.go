package handlers

import (
	"context"
	"net/http"

	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/services"
	"github.com/utxomerit/merit-api-service/internal/types"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

// parseMeritQuery extracts the address (required) and token id (optional)
// query parameters shared by the merit endpoints.
func parseMeritQuery(request *http.Request) (address, tokenID string, err *types.Error) {
	address = request.URL.Query().Get("address")
	if address == "" {
		return "", "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "address is required",
		)
	}
	tokenID = request.URL.Query().Get("token_id")
	return address, tokenID, nil
}
