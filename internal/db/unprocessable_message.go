package db

import (
	"context"

	"github.com/utxomerit/merit-api-service/internal/db/model"
)

// SaveUnprocessableMessage saves an unprocessable message to the database
func (db *Database) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	unprocessableMsgClient := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)

	document := model.NewUnprocessableMessageDocument(messageBody, receipt)
	_, err := unprocessableMsgClient.InsertOne(ctx, document)

	return err
}
