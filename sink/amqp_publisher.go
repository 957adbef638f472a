package sink

import (
	"context"
	"fmt"
	"log/slog"

	"wedding-planner/contract"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes persistent JSON messages to a durable RabbitMQ
// queue through the default exchange.
type AMQPPublisher struct {
	log     *slog.Logger
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewAMQPPublisher(log *slog.Logger, url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}
	// Idempotent, durable so messages survive broker restarts
	if _, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare failed: %w", err)
	}
	log.Info("Connected to RabbitMQ", "queue", queue)
	return &AMQPPublisher{log: log, conn: conn, channel: channel, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg contract.Message) error {
	return p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Type:         msg.Type,
			Timestamp:    msg.Timestamp,
			Body:         msg.Body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	channelErr := p.channel.Close()
	if err := p.conn.Close(); err != nil {
		return err
	}
	return channelErr
}
