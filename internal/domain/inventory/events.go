package inventory

import (
	"github.com/google/uuid"
)

// Event type constants carried in the envelope's event_type field.
const (
	EventTypeInventoryReserved = "InventoryReserved"
	EventTypeInventoryReleased = "InventoryReleased"
)

// Routing keys on the order_events topic exchange.
const (
	RoutingKeyInventoryReserved = "inventory.reserved"
	RoutingKeyInventoryReleased = "inventory.released"
)

// ReservedItem is one line of a reservation event.
type ReservedItem struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Quantity  int32  `json:"quantity"`
}

// ReservedEvent is published after reservation rows are written for an
// order.
type ReservedEvent struct {
	ReservationID string         `json:"reservation_id"`
	OrderID       uuid.UUID      `json:"order_id"`
	Items         []ReservedItem `json:"items"`
	WarehouseID   string         `json:"warehouse_id"`
}

func (e *ReservedEvent) EventType() string {
	return EventTypeInventoryReserved
}

func (e *ReservedEvent) RoutingKey() string {
	return RoutingKeyInventoryReserved
}

// ReleasedEvent is published when an order's reservations are released,
// e.g. on cancellation.
type ReleasedEvent struct {
	ReservationID string    `json:"reservation_id"`
	OrderID       uuid.UUID `json:"order_id"`
	Reason        string    `json:"reason"`
}

func (e *ReleasedEvent) EventType() string {
	return EventTypeInventoryReleased
}

func (e *ReleasedEvent) RoutingKey() string {
	return RoutingKeyInventoryReleased
}
