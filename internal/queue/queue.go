package queue

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/queue/client"
	"github.com/utxomerit/merit-api-service/internal/queue/handlers"
	"github.com/utxomerit/merit-api-service/internal/services"
	"github.com/utxomerit/merit-api-service/internal/types"
)

type MessageHandler func(ctx context.Context, messageBody string) *types.Error

type Queues struct {
	MeritRequestQueueClient client.QueueClient
	MeritResultQueueClient  client.QueueClient
	Handlers                *handlers.QueueHandler
	services                *services.Services
	processingTimeout       time.Duration
}

func New(cfg *config.QueueConfig, service *services.Services) *Queues {
	meritRequestQueueClient, err := client.NewQueueClient(cfg.Url, cfg.RequestQueueName)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating MeritRequestQueueClient")
	}
	meritResultQueueClient, err := client.NewQueueClient(cfg.Url, cfg.ResultQueueName)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating MeritResultQueueClient")
	}

	handlers := handlers.NewQueueHandler(service, meritResultQueueClient)
	return &Queues{
		MeritRequestQueueClient: meritRequestQueueClient,
		MeritResultQueueClient:  meritResultQueueClient,
		Handlers:                handlers,
		services:                service,
		processingTimeout:       time.Duration(cfg.ProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	startQueueMessageProcessing(
		q.MeritRequestQueueClient, q.Handlers.MeritRequestHandler,
		q.services, log.Logger, q.processingTimeout,
	)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.MeritRequestQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping merit request queue client")
	}
	if err := q.MeritResultQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping merit result queue client")
	}
}

func (q *Queues) IsConnectionHealthy() error {
	if err := q.MeritRequestQueueClient.Ping(); err != nil {
		return err
	}
	return q.MeritResultQueueClient.Ping()
}

func startQueueMessageProcessing(
	queueClient client.QueueClient, handler MessageHandler,
	service *services.Services, logger zerolog.Logger, timeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err := handler(ctx, message.Body)
			if err != nil {
				logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while processing message from queue")
				// A 4xx failure will never succeed on redelivery; park it
				// for inspection and take it off the queue.
				if err.StatusCode >= http.StatusBadRequest && err.StatusCode < http.StatusInternalServerError {
					saveErr := service.DbClient.SaveUnprocessableMessage(ctx, message.Body, message.Receipt)
					if saveErr != nil {
						logger.Error().Err(saveErr).Msg("error while saving unprocessable message")
						cancel()
						continue
					}
					if delErr := queueClient.DeleteMessage(message.Receipt); delErr != nil {
						logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting unprocessable message from queue")
					}
				}
				cancel()
				continue
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}
