package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wedding-planner/console"
	"wedding-planner/domain/seating"
	"wedding-planner/internal"
	"wedding-planner/observability"
	"wedding-planner/projection"
	"wedding-planner/services"
	"wedding-planner/sink"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the planner, the optional broker sink and the console, then
// blocks on stdin until quit, end of input or a signal.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Observers
	planner := projection.NewPlanner(log, config.PlannerName)
	monitor := observability.NewSeatingMonitor(log)
	observers := []seating.Observer{monitor}

	if config.BrokerEnabled() {
		publisher, err := sink.NewAMQPPublisher(log, config.AmqpURL, config.AmqpQueue)
		if err != nil {
			return fmt.Errorf("broker connection failed: %w", err)
		}
		defer func() {
			log.Info("Closing broker connection...")
			_ = publisher.Close()
		}()
		observers = append(observers, sink.NewBrokerSink(log, publisher, config.PublishTimeout))
	}

	// 3. Service
	service, err := services.NewSeatingService(log, planner, services.Limits{
		MaxGuests:   config.DefaultMaxGuests,
		MaxFamilies: config.DefaultMaxFamilies,
	}, observers...)
	if err != nil {
		return fmt.Errorf("service setup failed: %w", err)
	}
	if config.LoadSampleData {
		log.Info("Loaded sample guests", "count", service.LoadSampleData())
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Console
	fmt.Printf("Wedding seating planner (%s). Type help for commands.\n", config.PlannerName)
	cli := console.NewConsole(log, service, os.Stdout, config.Colours)
	if err := cli.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}

	stats := monitor.Stats()
	log.Info("Program stopped cleanly",
		"guests_seated", stats.GuestsSeated,
		"guests_removed", stats.GuestsRemoved,
		"bans_declared", stats.BansDeclared,
		"rule_violations", stats.RuleViolations)
	return nil
}
