// Package rabbitmq publishes status change notifications to RabbitMQ.
// Events are fanned out on a topic exchange with routing keys of the form
// "notification.<entity_kind>.<new_status>" so consumers can subscribe to a
// single aggregate kind or a single transition.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hatid/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// statusChangedMessage is the wire form of one status transition.
type statusChangedMessage struct {
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements NotificationPublisher on top of a RabbitMQ channel.
// Publish calls are serialized; amqp channels are not safe for concurrent use.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// NewPublisher connects to RabbitMQ and declares the notification exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// PublishStatusChanged publishes one message per status change event.
// Stops at the first failure; events already published stay published.
func (p *Publisher) PublishStatusChanged(ctx context.Context, events []kernel.StatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		body, err := json.Marshal(statusChangedMessage{
			EntityKind: event.EntityKind,
			EntityID:   event.EntityID.String(),
			OldStatus:  event.OldStatus,
			NewStatus:  event.NewStatus,
			OccurredAt: event.OccurredAt,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal status change: %w", err)
		}

		routingKey := fmt.Sprintf("notification.%s.%s", event.EntityKind, event.NewStatus)
		if err := p.ch.PublishWithContext(
			ctx,
			p.exchange,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				Timestamp:    event.OccurredAt,
				Body:         body,
			},
		); err != nil {
			return fmt.Errorf("failed to publish status change: %w", err)
		}
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
