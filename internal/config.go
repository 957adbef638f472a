package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	PlannerName        string        `env:"PLANNER_NAME,default=Main Wedding Planner" validate:"required"`
	DefaultMaxGuests   int           `env:"DEFAULT_MAX_GUESTS,default=10" validate:"min=1"`
	DefaultMaxFamilies int           `env:"DEFAULT_MAX_FAMILIES,default=2" validate:"min=1"`
	LoadSampleData     bool          `env:"LOAD_SAMPLE_DATA,default=true"`
	Colours            bool          `env:"COLOURS,default=true"`
	AmqpURL            string        `env:"AMQP_URL" validate:"omitempty,url"`
	AmqpQueue          string        `env:"AMQP_QUEUE,default=seating.events" validate:"required_with=AmqpURL"`
	PublishTimeout     time.Duration `env:"PUBLISH_TIMEOUT,default=2s" validate:"gt=0"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// BrokerEnabled reports whether seating events are published to RabbitMQ.
func (c Config) BrokerEnabled() bool {
	return c.AmqpURL != ""
}
