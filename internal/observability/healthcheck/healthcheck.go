package healthcheck

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/clients/ledger"
	"github.com/utxomerit/merit-api-service/internal/db"
	"github.com/utxomerit/merit-api-service/internal/queue"
)

var logger zerolog.Logger = log.Logger

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

const ledgerPingTimeout = 10 * time.Second

func StartHealthCheckCron(
	ctx context.Context,
	queues *queue.Queues,
	dbClient db.DBClient,
	ledgerClient ledger.Client,
	cronTime int,
) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTime == 0 {
		cronTime = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTime)

	_, err := c.AddFunc(cronSpec, func() {
		queueHealthCheck(queues)
		dbHealthCheck(ctx, dbClient)
		ledgerHealthCheck(ctx, ledgerClient)
	})

	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Stopping Health Check Cron")
		c.Stop()
	}()

	return nil
}

func queueHealthCheck(queues *queue.Queues) {
	if err := queues.IsConnectionHealthy(); err != nil {
		logger.Error().Err(err).Msg("One or more queue connections are not healthy.")
		terminateService()
	}
}

func dbHealthCheck(ctx context.Context, dbClient db.DBClient) {
	if err := dbClient.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Database connection is not healthy.")
		terminateService()
	}
}

// A ledger outage is survivable, requests fail with DATA_SOURCE_ERROR until
// the indexer comes back, so it only logs.
func ledgerHealthCheck(ctx context.Context, ledgerClient ledger.Client) {
	pingCtx, cancel := context.WithTimeout(ctx, ledgerPingTimeout)
	defer cancel()
	if _, err := ledgerClient.GetChainHeight(pingCtx); err != nil {
		logger.Error().Err(err).Msg("Ledger data source is not reachable.")
	}
}

func terminateService() {
	logger.Fatal().Msg("Terminating service due to health check failure.")
	os.Exit(1)
}
