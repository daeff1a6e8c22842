package config

import "errors"

// QueueConfig wires the score request/result queues on RabbitMQ.
type QueueConfig struct {
	Url               string `mapstructure:"url"`
	RequestQueueName  string `mapstructure:"request-queue-name"`
	ResultQueueName   string `mapstructure:"result-queue-name"`
	ProcessingTimeout int    `mapstructure:"processing-timeout"` // seconds
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return errors.New("queue url cannot be empty")
	}

	if cfg.RequestQueueName == "" {
		return errors.New("request queue name cannot be empty")
	}

	if cfg.ResultQueueName == "" {
		return errors.New("result queue name cannot be empty")
	}

	if cfg.ProcessingTimeout <= 0 {
		return errors.New("processing timeout must be a positive integer")
	}

	return nil
}
