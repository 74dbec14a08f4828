// Package rabbitmq publishes schedule lifecycle events to a RabbitMQ topic
// exchange. The routing key is the event type, e.g. "schedule.completed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"scheduling/internal/core/domain/model/schedule"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DefaultExchange = "scheduling.events"

var ErrPublisherClosed = errors.New("rabbitmq publisher is closed")

// Publisher implements ports.EventPublisher over a single AMQP channel.
// Publish calls are serialized; a dropped connection is re-dialed on the
// next publish.
type Publisher struct {
	url      string
	exchange string
	logger   *zap.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(url, exchange string, logger *zap.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	p := &Publisher{
		url:      url,
		exchange: exchange,
		logger:   logger.With(zap.String("component", "rabbitmq_publisher")),
	}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, event schedule.Event) error {
	msg, err := message(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		p.logger.Warn("rabbitmq connection lost, reconnecting")
		if err = p.connect(); err != nil {
			return fmt.Errorf("reconnect to rabbitmq: %w", err)
		}
	}

	if err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.Debug("event published",
		zap.String("type", string(event.Type)),
		zap.String("schedule_id", event.ScheduleID.String()),
	)
	return nil
}

// Close shuts the channel and the connection. It is safe to call twice.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	if p.ch != nil && !p.ch.IsClosed() {
		err = errors.Join(err, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

// connect must be called with mu held, or before the publisher is shared.
func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err = ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

type eventBody struct {
	ScheduleID string    `json:"scheduleId"`
	DriverID   string    `json:"driverId"`
	RouteID    string    `json:"routeId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func message(event schedule.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(eventBody{
		ScheduleID: event.ScheduleID.String(),
		DriverID:   event.DriverID.String(),
		RouteID:    event.RouteID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", event.Type, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		MessageId:    event.ScheduleID.String() + ":" + string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Body:         body,
	}, nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, schedule.Event) error {
	return nil
}
