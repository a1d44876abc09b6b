package order

import (
	"github.com/google/uuid"
)

// Event type constants carried in the envelope's event_type field.
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
	EventTypeOrderCancelled     = "OrderCancelled"
)

// Routing keys on the order_events topic exchange.
const (
	RoutingKeyOrderCreated      = "order.created"
	RoutingKeyOrderCancelled    = "order.cancelled"
	routingKeyOrderStatusPrefix = "order.status."
)

// StatusRoutingKey builds the per-status routing key, e.g.
// "order.status.cancelled".
func StatusRoutingKey(status OrderStatus) string {
	return routingKeyOrderStatusPrefix + status.String()
}

// CreatedEvent is published after an order-creation transaction commits.
type CreatedEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	ItemsCount  int32     `json:"items_count"`
}

// NewCreatedEvent builds the payload from a persisted order. The amount is
// rendered at the schema's two-decimal money scale so "15" and "15.00"
// never diverge across consumers.
func NewCreatedEvent(o *Order) *CreatedEvent {
	return &CreatedEvent{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		Status:      o.Status.String(),
		TotalAmount: o.TotalAmount.StringFixed(2),
		ItemsCount:  int32(o.ItemsCount()),
	}
}

func (e *CreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

func (e *CreatedEvent) RoutingKey() string {
	return RoutingKeyOrderCreated
}

// StatusChangedEvent is published after a status transition commits. The
// routing key carries the new status so consumers can bind selectively.
type StatusChangedEvent struct {
	OrderID        uuid.UUID `json:"order_id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      *string   `json:"changed_by"`
	Notes          *string   `json:"notes"`
}

// NewStatusChangedEvent builds the payload for a transition from previous
// to next.
func NewStatusChangedEvent(orderID uuid.UUID, previous, next OrderStatus, changedBy, notes *string) *StatusChangedEvent {
	prev := previous.String()
	return &StatusChangedEvent{
		OrderID:        orderID,
		PreviousStatus: &prev,
		NewStatus:      next.String(),
		ChangedBy:      changedBy,
		Notes:          notes,
	}
}

func (e *StatusChangedEvent) EventType() string {
	return EventTypeOrderStatusChanged
}

func (e *StatusChangedEvent) RoutingKey() string {
	return routingKeyOrderStatusPrefix + e.NewStatus
}

// CancelledEvent is published in addition to the status-changed event when
// an order moves to Cancelled.
type CancelledEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	Reason      string    `json:"reason"`
	CancelledBy *string   `json:"cancelled_by"`
}

// NewCancelledEvent builds the payload; an empty reason becomes a fixed
// placeholder so consumers never see a blank field.
func NewCancelledEvent(orderID uuid.UUID, reason string, cancelledBy *string) *CancelledEvent {
	if reason == "" {
		reason = "No reason provided"
	}
	return &CancelledEvent{
		OrderID:     orderID,
		Reason:      reason,
		CancelledBy: cancelledBy,
	}
}

func (e *CancelledEvent) EventType() string {
	return EventTypeOrderCancelled
}

func (e *CancelledEvent) RoutingKey() string {
	return RoutingKeyOrderCancelled
}
