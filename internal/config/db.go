package config

import "errors"

type DbConfig struct {
	DbName  string `mapstructure:"db-name"`
	Address string `mapstructure:"address"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return errors.New("db address cannot be empty")
	}

	if cfg.DbName == "" {
		return errors.New("db name cannot be empty")
	}

	return nil
}
