package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries everything needed to create an order. Item
// quantities and prices are validated before any I/O; validator tags cover
// the structural rules and the service checks the decimal fields itself.
type CreateOrderRequest struct {
	CustomerID uuid.UUID              `json:"customer_id" validate:"required"`
	Items      []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
	Shipping   ShippingInput          `json:"shipping_info" validate:"required"`
	Payment    PaymentInput           `json:"payment_info" validate:"required"`
	Notes      *string                `json:"notes"`
	Currency   string                 `json:"currency"`
}

// CreateOrderItemInput is one requested line item. ProductID is the id of
// the local inventory row to debit and must parse as a UUID.
type CreateOrderItemInput struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	SKU       string          `json:"sku" validate:"required,min=1,max=100"`
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Quantity  int32           `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ShippingInput is the shipping detail block of a create request.
type ShippingInput struct {
	AddressLine1   string          `json:"address_line1" validate:"required,min=1,max=255"`
	AddressLine2   *string         `json:"address_line2"`
	City           string          `json:"city" validate:"required,min=1,max=100"`
	State          string          `json:"state" validate:"required,min=1,max=100"`
	PostalCode     string          `json:"postal_code" validate:"required,min=1,max=20"`
	Country        string          `json:"country" validate:"required,min=1,max=100"`
	RecipientName  string          `json:"recipient_name" validate:"required,min=1,max=200"`
	RecipientPhone *string         `json:"recipient_phone"`
	ShippingMethod string          `json:"shipping_method" validate:"required,min=1,max=100"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
}

// PaymentInput is the payment detail block of a create request. Amount is
// derived from the line items, never supplied.
type PaymentInput struct {
	PaymentMethod string  `json:"payment_method" validate:"required,min=1,max=100"`
	TransactionID *string `json:"transaction_id"`
}

// UpdateStatusRequest moves an order to a target status.
type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

// OrderCounts aggregates order totals for the query surface.
type OrderCounts struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// StatusHistoryEntry is one audit row of an order's lifecycle.
type StatusHistoryEntry struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	StatusNotes    *string   `json:"status_notes"`
	ChangedBy      *string   `json:"changed_by"`
	CreatedAt      time.Time `json:"created_at"`
}
