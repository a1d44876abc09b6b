package shared

import "context"

// EventPublisher publishes domain events to the message bus. Publishing
// is best-effort from the caller's point of view: orchestration flows
// treat a failed publish as non-fatal and log it.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
