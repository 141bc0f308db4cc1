package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/plateup/orderflow/internal/domain/model"
)

// Publisher delivers order events to the notification collaborator.
type Publisher interface {
	Publish(ctx context.Context, event model.OrderEvent) error
	Close() error
}

// AMQPPublisher publishes order events to a RabbitMQ fanout exchange, one
// channel per publish.
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker and declares the fanout exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, exchange: exchange, logger: logger}, nil
}

// Publish sends one event as a persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, event model.OrderEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, string(event.Kind), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close shuts down the broker connection.
func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}

// LogPublisher records events to the log instead of a broker. Used when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(_ context.Context, event model.OrderEvent) error {
	p.logger.Info("order event",
		slog.String("kind", string(event.Kind)),
		slog.Int64("order_id", event.OrderID),
		slog.String("status", string(event.Status)),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
