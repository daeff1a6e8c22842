package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/utxomerit/merit-api-service/internal/config"
	"github.com/utxomerit/merit-api-service/internal/utils"
)

const (
	UnprocessableMsgCollection = "unprocessable_messages"
)

var collections = []string{
	UnprocessableMsgCollection,
}

// Setup creates the database collections the service writes to.
func Setup(ctx context.Context, cfg *config.Config) error {
	clientOps := options.Client().ApplyURI(cfg.Db.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	// Create a context with timeout for the setup operations
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database := client.Database(cfg.Db.DbName)

	existing, err := database.ListCollectionNames(ctx, map[string]interface{}{})
	if err != nil {
		return err
	}
	for _, name := range collections {
		if !utils.Contains(existing, name) {
			if err := database.CreateCollection(ctx, name); err != nil {
				return err
			}
		}
	}

	return client.Disconnect(ctx)
}
