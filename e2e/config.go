package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_AMQP_URL enables the broker scenario against a live RabbitMQ
	AmqpURL   string `envconfig:"E2E_AMQP_URL"`
	AmqpQueue string `envconfig:"E2E_AMQP_QUEUE" default:"seating.e2e"`
	// E2E_DEBUG_LOG prints engine logs at debug level
	DebugLog bool `envconfig:"E2E_DEBUG_LOG" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
