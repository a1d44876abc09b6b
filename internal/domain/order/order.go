package order

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/logistics/engine/internal/domain/shared"
)

// OrderStatus is the lifecycle state of an order. The lowercase string form
// is what the store and the bus carry; Code gives the compact integer form
// used on the RPC boundary.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusOutOfStock OrderStatus = "out_of_stock"
)

// orderStatuses lists all statuses in code order: Code(i) == index+1.
var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReturned,
	OrderStatusOutOfStock,
}

// String returns the wire and storage form of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, known := range orderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Code returns the compact integer form of the status, 0 for unknown.
func (s OrderStatus) Code() int32 {
	for i, known := range orderStatuses {
		if s == known {
			return int32(i + 1)
		}
	}
	return 0
}

// ParseOrderStatus converts the wire form back to a status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", shared.NewValidationError(fmt.Sprintf("unknown order status %q", s))
	}
	return status, nil
}

// OrderStatusFromCode converts the compact integer form back to a status.
func OrderStatusFromCode(code int32) (OrderStatus, error) {
	if code < 1 || int(code) > len(orderStatuses) {
		return "", shared.NewValidationError(fmt.Sprintf("unknown order status code %d", code))
	}
	return orderStatuses[code-1], nil
}

// CanTransitionTo checks if the status can move to the target status.
// Cancellation is reachable from every non-terminal status; Delivered can
// only move on to Returned; Cancelled and Returned are terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled || target == OrderStatusOutOfStock
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered:
		return target == OrderStatusReturned
	case OrderStatusOutOfStock:
		return target == OrderStatusCancelled
	case OrderStatusCancelled, OrderStatusReturned:
		return false
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// Order is the aggregate the orchestrator creates and mutates. Rows are
// created inside a transaction together with their items, payment and
// shipping records, and are never deleted through the service API.
type Order struct {
	shared.BaseEntity
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status         OrderStatus     `gorm:"type:varchar(50);not null;default:'pending'"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'USD'"`
	TrackingNumber *string         `gorm:"type:varchar(100)"`
	Notes          *string         `gorm:"type:text"`

	Items    []OrderItem   `gorm:"foreignKey:OrderID;references:ID"`
	Payment  *PaymentInfo  `gorm:"foreignKey:OrderID;references:ID"`
	Shipping *ShippingInfo `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM.
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order. The total amount is the sum of the item
// totals and is computed by the caller before construction.
func NewOrder(customerID uuid.UUID, totalAmount decimal.Decimal, currency string, notes *string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("customer ID cannot be empty")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewValidationError("total amount cannot be negative")
	}
	if currency == "" {
		currency = "USD"
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		Status:      OrderStatusPending,
		TotalAmount: totalAmount,
		Currency:    currency,
		Notes:       notes,
	}, nil
}

// UpdateStatus moves the order to the target status after validating the
// transition. Callers that already compared current and target handle the
// no-op case themselves.
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewValidationError(fmt.Sprintf("invalid status transition from %s to %s", o.Status, target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// SetNotes replaces the order notes.
func (o *Order) SetNotes(notes string) {
	o.Notes = &notes
	o.Touch()
}

// SetTrackingNumber attaches a carrier tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.TrackingNumber = &trackingNumber
	o.Touch()
}

// SetTotalAmount replaces the order total, e.g. after an item update.
func (o *Order) SetTotalAmount(total decimal.Decimal) {
	o.TotalAmount = total
	o.Touch()
}

// ItemsCount returns the number of line items loaded on the order.
func (o *Order) ItemsCount() int {
	return len(o.Items)
}

// SumItemTotals adds up the line totals of the given items.
func SumItemTotals(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}
