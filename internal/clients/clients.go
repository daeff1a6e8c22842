package clients

import (
	"github.com/utxomerit/merit-api-service/internal/clients/ledger"
	"github.com/utxomerit/merit-api-service/internal/config"
)

type Clients struct {
	Ledger ledger.Client
}

func New(cfg *config.Config) *Clients {
	var ledgerClient ledger.Client = ledger.NewLedgerClient(&cfg.Ledger)
	if cfg.Cache.Enabled() {
		ledgerClient = ledger.NewCachedClient(ledgerClient, &cfg.Cache)
	}

	return &Clients{
		Ledger: ledgerClient,
	}
}
