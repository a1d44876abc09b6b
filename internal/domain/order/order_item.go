package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/logistics/engine/internal/domain/shared"
)

// OrderItem is a line item of an order. ProductID and SKU reference the
// remote inventory service's catalog, so they are carried as opaque strings
// rather than local foreign keys.
type OrderItem struct {
	shared.BaseEntity
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  string          `gorm:"type:varchar(100);not null"`
	SKU        string          `gorm:"type:varchar(100);not null;column:sku"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int32           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM.
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a line item. TotalPrice is derived, never supplied.
func NewOrderItem(orderID uuid.UUID, productID, sku, name string, quantity int32, unitPrice decimal.Decimal) (*OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order ID cannot be empty")
	}
	if productID == "" {
		return nil, shared.NewValidationError("product ID cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewValidationError("quantity must be at least 1")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewValidationError("unit price must be positive")
	}

	return &OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		SKU:        sku,
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt32(quantity)),
	}, nil
}

// UpdateQuantity changes the quantity and recomputes the line total.
func (i *OrderItem) UpdateQuantity(quantity int32) error {
	if quantity < 1 {
		return shared.NewValidationError("quantity must be at least 1")
	}
	i.Quantity = quantity
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt32(quantity))
	i.Touch()
	return nil
}
