package shared

// DomainEvent is implemented by payloads that can be published to the
// message bus. EventType names the event kind carried in the envelope,
// RoutingKey selects the topic binding used when publishing.
type DomainEvent interface {
	EventType() string
	RoutingKey() string
}
