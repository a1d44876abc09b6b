package event

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/telemetry"
)

// Publisher sends enveloped domain events to a topic exchange. It
// implements shared.EventPublisher.
type Publisher struct {
	conn     *Connection
	exchange string
	logger   *zap.Logger
}

// NewPublisher declares the durable topic exchange and returns a publisher
// bound to it.
func NewPublisher(conn *Connection, exchange string, logger *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
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
		return nil, err
	}

	return &Publisher{conn: conn, exchange: exchange, logger: logger}, nil
}

// Publish wraps the event in an envelope and sends it with the event's
// routing key. Messages are persistent so the broker keeps them across
// restarts.
func (p *Publisher) Publish(ctx context.Context, event shared.DomainEvent) error {
	envelope, err := NewEnvelope(event)
	if err != nil {
		return shared.NewBusError(err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return shared.NewBusError(err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return shared.NewBusError(err)
	}

	if err := ch.PublishWithContext(ctx,
		p.exchange,
		event.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			Headers:      telemetry.InjectHeaders(ctx, nil),
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    envelope.ID,
			Timestamp:    envelope.Timestamp,
			Type:         envelope.EventType,
			Body:         body,
		},
	); err != nil {
		return shared.NewBusError(err)
	}

	p.logger.Debug("Published event",
		zap.String("event_type", envelope.EventType),
		zap.String("routing_key", event.RoutingKey()),
		zap.String("envelope_id", envelope.ID),
	)
	return nil
}
