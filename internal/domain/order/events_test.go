package order

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatedEvent(t *testing.T) {
	item, err := NewOrderItem(uuid.New(), "prod-1", "SKU-001", "Widget", 3, decimal.RequireFromString("5.00"))
	require.NoError(t, err)

	o, err := NewOrder(uuid.New(), item.TotalPrice, "USD", nil)
	require.NoError(t, err)
	o.Items = []OrderItem{*item}

	e := NewCreatedEvent(o)

	assert.Equal(t, EventTypeOrderCreated, e.EventType())
	assert.Equal(t, "order.created", e.RoutingKey())
	assert.Equal(t, o.ID, e.OrderID)
	assert.Equal(t, "pending", e.Status)
	assert.Equal(t, "15.00", e.TotalAmount)
	assert.Equal(t, int32(1), e.ItemsCount)
}

func TestNewStatusChangedEvent(t *testing.T) {
	orderID := uuid.New()
	e := NewStatusChangedEvent(orderID, OrderStatusPending, OrderStatusCancelled, nil, nil)

	assert.Equal(t, EventTypeOrderStatusChanged, e.EventType())
	assert.Equal(t, "order.status.cancelled", e.RoutingKey())
	require.NotNil(t, e.PreviousStatus)
	assert.Equal(t, "pending", *e.PreviousStatus)
	assert.Equal(t, "cancelled", e.NewStatus)
}

func TestStatusRoutingKey(t *testing.T) {
	assert.Equal(t, "order.status.out_of_stock", StatusRoutingKey(OrderStatusOutOfStock))
	assert.Equal(t, "order.status.processing", StatusRoutingKey(OrderStatusProcessing))
}

func TestNewCancelledEvent_DefaultReason(t *testing.T) {
	e := NewCancelledEvent(uuid.New(), "", nil)
	assert.Equal(t, "No reason provided", e.Reason)
	assert.Equal(t, "order.cancelled", e.RoutingKey())
}

func TestStatusChangedEvent_JSONShape(t *testing.T) {
	orderID := uuid.New()
	notes := "customer request"
	e := NewStatusChangedEvent(orderID, OrderStatusProcessing, OrderStatusCancelled, nil, &notes)

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, orderID.String(), decoded["order_id"])
	assert.Equal(t, "processing", decoded["previous_status"])
	assert.Equal(t, "cancelled", decoded["new_status"])
	assert.Equal(t, "customer request", decoded["notes"])
	assert.Contains(t, decoded, "changed_by")
}
