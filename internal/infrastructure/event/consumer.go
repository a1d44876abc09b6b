package event

import (
	"context"
	"errors"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/logger"
	"github.com/logistics/engine/internal/infrastructure/telemetry"
)

// redeliveryHeader tracks how many times a delivery has been retried. It
// lives in the message headers so the count survives republishing.
const redeliveryHeader = "x-redelivery-count"

// idempotencyTTL bounds how long a processed envelope id is remembered.
const idempotencyTTL = 24 * time.Hour

// ErrRequeue is returned by a handler to request a counted redelivery
// instead of the default log-and-acknowledge treatment of its error.
var ErrRequeue = errors.New("requeue delivery")

// Handler processes one decoded envelope. An ordinary error is logged and
// the delivery acknowledged; wrapping ErrRequeue opts into the counted
// republish that ends in the DLQ.
type Handler func(ctx context.Context, envelope *Envelope) error

// busChannel is the slice of amqp.Channel the dispatch path publishes
// retries through; tests substitute a recording fake.
type busChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Consumer reads enveloped events from a queue and dispatches them by
// event type. Deliveries that exhaust their retries are dead-lettered to
// the queue's DLQ through the exchange's dead-letter exchange; everything
// else is acknowledged so a poison message can never wedge the queue.
type Consumer struct {
	conn            *Connection
	exchange        string
	queue           string
	maxRedeliveries int
	handlers        map[string]Handler
	bindings        []string
	idempotency     shared.IdempotencyStore
	logger          *zap.Logger

	mu      sync.Mutex
	done    chan struct{}
	started bool
	stopped bool
}

// NewConsumer creates a consumer for the given queue. The idempotency
// store may be nil, in which case duplicate deliveries are not filtered.
func NewConsumer(
	conn *Connection,
	exchange, queue string,
	maxRedeliveries int,
	idempotency shared.IdempotencyStore,
	logger *zap.Logger,
) *Consumer {
	return &Consumer{
		conn:            conn,
		exchange:        exchange,
		queue:           queue,
		maxRedeliveries: maxRedeliveries,
		handlers:        make(map[string]Handler),
		idempotency:     idempotency,
		logger:          logger,
		done:            make(chan struct{}),
	}
}

// Register binds a routing-key pattern to the queue and dispatches the
// given event type to handler. Call before Start.
func (c *Consumer) Register(bindingKey, eventType string, handler Handler) {
	c.bindings = append(c.bindings, bindingKey)
	c.handlers[eventType] = handler
}

// Start declares the topology and begins consuming in a goroutine. The
// main queue dead-letters into <exchange>.dlx, which routes to
// <queue>.dlq.
func (c *Consumer) Start(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}

	dlx := c.exchange + ".dlx"
	dlq := c.queue + ".dlq"

	if err := ch.ExchangeDeclare(c.exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.ExchangeDeclare(dlx, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return err
	}

	// Dead-lettered messages keep their original routing key, so the DLQ
	// is bound with the same patterns as the main queue.
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": dlx,
	}); err != nil {
		return err
	}

	for _, binding := range c.bindings {
		if err := ch.QueueBind(c.queue, binding, c.exchange, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(dlq, binding, dlx, false, nil); err != nil {
			return err
		}
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.logger.Info("Event consumer started",
		zap.String("queue", c.queue),
		zap.Strings("bindings", c.bindings),
	)

	c.mu.Lock()
	c.started = true
	c.mu.Unlock()

	go c.loop(ctx, ch, deliveries)
	return nil
}

func (c *Consumer) loop(ctx context.Context, ch *amqp.Channel, deliveries <-chan amqp.Delivery) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				c.logger.Warn("Delivery channel closed", zap.String("queue", c.queue))
				return
			}
			c.handleDelivery(ctx, ch, delivery)
		}
	}
}

// handleDelivery applies the dispatch policy: undecodable bodies are
// acknowledged and dropped, duplicates are acknowledged and skipped, and
// handler failures are logged and acknowledged unless the handler asked
// for a requeue, which republishes with a counted redelivery header until
// the delivery gets dead-lettered.
func (c *Consumer) handleDelivery(ctx context.Context, ch busChannel, delivery amqp.Delivery) {
	envelope, err := DecodeEnvelope(delivery.Body)
	if err != nil {
		c.logger.Warn("Dropping undecodable message",
			zap.String("queue", c.queue),
			zap.Error(err),
		)
		c.ack(delivery)
		return
	}

	if c.idempotency != nil {
		processed, err := c.idempotency.IsProcessed(ctx, envelope.ID)
		if err != nil {
			c.logger.Warn("Idempotency lookup failed, processing anyway",
				zap.String("envelope_id", envelope.ID),
				zap.Error(err),
			)
		} else if processed {
			c.logger.Debug("Skipping duplicate delivery",
				zap.String("envelope_id", envelope.ID),
				zap.String("event_type", envelope.EventType),
			)
			c.ack(delivery)
			return
		}
	}

	handler, ok := c.handlers[envelope.EventType]
	if !ok {
		// Bound patterns can match event types nothing subscribed to.
		c.ack(delivery)
		return
	}

	handlerCtx := telemetry.ExtractHeaders(ctx, delivery.Headers)
	if err := handler(handlerCtx, envelope); err != nil {
		log := logger.WithTraceContext(handlerCtx, c.logger)
		if errors.Is(err, ErrRequeue) {
			log.Warn("Event handler requested requeue",
				zap.String("event_type", envelope.EventType),
				zap.String("envelope_id", envelope.ID),
				zap.Error(err),
			)
			c.retry(ctx, ch, delivery)
			return
		}
		// Availability over redelivery: the failure is recorded and the
		// queue keeps moving.
		log.Error("Event handler failed",
			zap.String("event_type", envelope.EventType),
			zap.String("envelope_id", envelope.ID),
			zap.Error(err),
		)
		c.ack(delivery)
		return
	}

	if c.idempotency != nil {
		if _, err := c.idempotency.MarkProcessed(ctx, envelope.ID, idempotencyTTL); err != nil {
			c.logger.Warn("Failed to record processed envelope",
				zap.String("envelope_id", envelope.ID),
				zap.Error(err),
			)
		}
	}
	c.ack(delivery)
}

// retry republishes the delivery with an incremented redelivery count, or
// nacks it to the DLQ once the count is exhausted.
func (c *Consumer) retry(ctx context.Context, ch busChannel, delivery amqp.Delivery) {
	headers := delivery.Headers
	if headers == nil {
		headers = amqp.Table{}
	}

	count, _ := headers[redeliveryHeader].(int64)
	count++
	headers[redeliveryHeader] = count

	if count > int64(c.maxRedeliveries) {
		c.logger.Warn("Redelivery limit reached, dead-lettering",
			zap.String("queue", c.queue),
			zap.Int64("redeliveries", count-1),
		)
		if err := delivery.Nack(false, false); err != nil {
			c.logger.Warn("Failed to nack delivery", zap.Error(err))
		}
		return
	}

	if err := ch.PublishWithContext(ctx,
		delivery.Exchange,
		delivery.RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Headers:      headers,
			MessageId:    delivery.MessageId,
			Type:         delivery.Type,
			Body:         delivery.Body,
		},
	); err != nil {
		c.logger.Warn("Failed to republish for retry, nacking",
			zap.Error(err),
		)
		if err := delivery.Nack(false, false); err != nil {
			c.logger.Warn("Failed to nack delivery", zap.Error(err))
		}
		return
	}
	c.ack(delivery)
}

func (c *Consumer) ack(delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.logger.Warn("Failed to ack delivery", zap.Error(err))
	}
}

// Stop waits for the consume loop to drain after its context is
// cancelled.
func (c *Consumer) Stop() {
	c.mu.Lock()
	if c.stopped || !c.started {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.mu.Unlock()

	<-c.done
	c.logger.Info("Event consumer stopped", zap.String("queue", c.queue))
}
