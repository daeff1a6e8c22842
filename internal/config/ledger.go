package config

import (
	"errors"
	"net/url"
)

// LedgerConfig points at the ledger indexer the service reads UTXO sets,
// transactions and address histories from.
type LedgerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	// Timeout is the default per-request timeout in milliseconds.
	Timeout int `mapstructure:"timeout"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("ledger endpoint cannot be empty")
	}
	parsed, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil || parsed.Host == "" {
		return errors.New("invalid ledger endpoint")
	}

	if cfg.Timeout <= 0 {
		return errors.New("ledger timeout cannot be smaller or equal to 0")
	}

	return nil
}
