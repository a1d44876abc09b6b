package event

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Connection wraps one AMQP connection plus the channel everything in this
// process publishes and consumes on. Dial and channel opens retry with
// backoff because the broker routinely comes up after the service does in
// compose environments.
type Connection struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	url     string
	retries int
	logger  *zap.Logger
}

// NewConnection dials the broker and opens a channel, retrying each step
// up to retries times. Connection attempts back off exponentially (2^n
// seconds), channel attempts linearly (n seconds).
func NewConnection(url string, retries int, logger *zap.Logger) (*Connection, error) {
	// A non-positive count would skip the dial loop entirely.
	if retries < 1 {
		retries = 1
	}
	c := &Connection{url: url, retries: retries, logger: logger}
	if err := c.connect(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Connection) connect() error {
	var err error

	for attempt := 1; attempt <= c.retries; attempt++ {
		c.conn, err = amqp.Dial(c.url)
		if err == nil {
			break
		}
		wait := time.Duration(1<<attempt) * time.Second
		c.logger.Warn("RabbitMQ connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		if attempt < c.retries {
			time.Sleep(wait)
		}
	}
	if err != nil {
		return fmt.Errorf("connect to RabbitMQ after %d attempts: %w", c.retries, err)
	}

	for attempt := 1; attempt <= c.retries; attempt++ {
		c.channel, err = c.conn.Channel()
		if err == nil {
			return nil
		}
		wait := time.Duration(attempt) * time.Second
		c.logger.Warn("RabbitMQ channel open failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		if attempt < c.retries {
			time.Sleep(wait)
		}
	}

	c.conn.Close()
	return fmt.Errorf("open RabbitMQ channel after %d attempts: %w", c.retries, err)
}

// Channel returns the shared channel, reconnecting first if the
// underlying connection has been closed by the broker.
func (c *Connection) Channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		c.logger.Info("RabbitMQ connection lost, reconnecting")
		if err := c.connect(); err != nil {
			return nil, err
		}
	}
	return c.channel, nil
}

// Close shuts the channel and then the connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("Failed to close RabbitMQ channel", zap.Error(err))
		}
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}
