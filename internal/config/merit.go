package config

import (
	"errors"
	"time"
)

// MeritConfig controls the merit calculation itself.
type MeritConfig struct {
	// AgingEnabled switches the network-expensive ancestry walk on. With it
	// off, merit degrades to the plain held quantity.
	AgingEnabled bool `mapstructure:"aging-enabled"`
	// MaxHops bounds a single ancestry walk. 0 means unbounded, in which
	// case callers should bound the walk with a context deadline instead.
	MaxHops uint `mapstructure:"max-hops"`
	// LookupDelay is an optional pause between parent lookups, used purely
	// to respect indexer rate limits.
	LookupDelay time.Duration `mapstructure:"lookup-delay"`
	// WalkConcurrency caps how many per-UTXO walks run at once.
	WalkConcurrency int `mapstructure:"walk-concurrency"`
	// LenientAncestry downgrades a failed ancestry resolution to age 0 with
	// a logged warning instead of failing the whole aggregation.
	LenientAncestry bool `mapstructure:"lenient-ancestry"`
}

func (cfg *MeritConfig) Validate() error {
	if cfg.WalkConcurrency <= 0 {
		return errors.New("walk-concurrency must be a positive integer")
	}

	if cfg.LookupDelay < 0 {
		return errors.New("lookup-delay cannot be negative")
	}

	return nil
}
