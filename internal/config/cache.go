package config

import (
	"errors"
	"time"
)

// CacheConfig controls the read-through cache in front of the ledger client.
// A zero TTL disables caching entirely.
type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity uint64        `mapstructure:"capacity"`
}

func (cfg *CacheConfig) Validate() error {
	if cfg.TTL < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	if cfg.TTL > 0 && cfg.Capacity == 0 {
		return errors.New("cache capacity must be set when caching is enabled")
	}

	return nil
}

func (cfg *CacheConfig) Enabled() bool {
	return cfg.TTL > 0
}
