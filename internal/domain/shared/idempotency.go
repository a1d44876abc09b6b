package shared

import (
	"context"
	"time"
)

// IdempotencyStore records processed event IDs so consumers can drop
// duplicate deliveries.
type IdempotencyStore interface {
	// MarkProcessed marks an event as processed with a TTL. It returns
	// true if the event was newly marked, false if it had already been
	// processed within the TTL window.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether an event has already been processed.
	IsProcessed(ctx context.Context, eventID string) (bool, error)

	// Close releases the store's resources.
	Close() error
}
