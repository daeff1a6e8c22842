package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/utxomerit/merit-api-service/internal/clients"
	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/db"
)

// Service layer contains the merit computation and is used to interact with
// the ledger data source and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	Clients  *clients.Clients
	cfg      *config.Config
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients) (*Services, error) {
	dbClient, err := db.New(ctx, &cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient: dbClient,
		Clients:  clients,
		cfg:      cfg,
	}, nil
}

// DoHealthCheck checks the health of the services by pinging the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}
