package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/cmd/merit-api-service/cli"
	"github.com/utxomerit/merit-api-service/internal/api"
	"github.com/utxomerit/merit-api-service/internal/clients"
	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/db/model"
	"github.com/utxomerit/merit-api-service/internal/observability/healthcheck"
	"github.com/utxomerit/merit-api-service/internal/observability/metrics"
	"github.com/utxomerit/merit-api-service/internal/queue"
	"github.com/utxomerit/merit-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up merit db model")
	}

	ledgerClients := clients.New(cfg)
	services, err := services.New(ctx, cfg, ledgerClients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up merit services layer")
	}

	// Start processing merit score requests from the queue
	queues := queue.New(&cfg.Queue, services)
	queues.StartReceivingMessages()

	err = healthcheck.StartHealthCheckCron(
		ctx, queues, services.DbClient, ledgerClients.Ledger, cfg.Server.HealthCheckInterval,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up merit api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting merit api service")
	}
}
