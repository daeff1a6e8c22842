package handlers

import (
	"github.com/utxomerit/merit-api-service/internal/queue/client"
	"github.com/utxomerit/merit-api-service/internal/services"
)

type QueueHandler struct {
	Services     *services.Services
	resultClient client.QueueClient
}

func NewQueueHandler(services *services.Services, resultClient client.QueueClient) *QueueHandler {
	return &QueueHandler{
		Services:     services,
		resultClient: resultClient,
	}
}
