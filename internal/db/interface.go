package db

import (
	"context"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// SaveUnprocessableMessage dead-letters a queue message that could not
	// be processed so it can be inspected and replayed.
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
}
