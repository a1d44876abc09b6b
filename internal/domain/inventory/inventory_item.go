package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/logistics/engine/internal/domain/shared"
)

// InventoryItem is the local stock row for a product in a warehouse. The
// orchestrator decrements quantity inside order-creation transactions and
// restores it on cancellation; quantity never goes below zero through any
// successful path.
type InventoryItem struct {
	shared.BaseEntity
	SKU                string          `gorm:"type:varchar(100);not null;column:sku;uniqueIndex:idx_inventory_items_warehouse_sku,priority:2"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Description        *string         `gorm:"type:text"`
	WarehouseID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_items_warehouse_sku,priority:1"`
	Quantity           int32           `gorm:"not null;default:0"`
	Price              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Attributes         map[string]any  `gorm:"type:jsonb;serializer:json"`
	Category           *string         `gorm:"type:varchar(100)"`
	LowStockThreshold  *int32
	OverstockThreshold *int32
}

// TableName returns the table name for GORM.
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a stock row for a warehouse-product combination.
func NewInventoryItem(sku, name string, warehouseID uuid.UUID, quantity int32, price decimal.Decimal) (*InventoryItem, error) {
	if sku == "" {
		return nil, shared.NewValidationError("SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidationError("name cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse ID cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("quantity cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("price cannot be negative")
	}

	return &InventoryItem{
		BaseEntity:  shared.NewBaseEntity(),
		SKU:         sku,
		Name:        name,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		Price:       price,
	}, nil
}

// IsLowStock reports whether quantity has fallen to or below the low-stock
// threshold, when one is set.
func (i *InventoryItem) IsLowStock() bool {
	return i.LowStockThreshold != nil && i.Quantity <= *i.LowStockThreshold
}

// IsOverstocked reports whether quantity exceeds the overstock threshold,
// when one is set.
func (i *InventoryItem) IsOverstocked() bool {
	return i.OverstockThreshold != nil && i.Quantity > *i.OverstockThreshold
}

// CanFulfill reports whether the row has enough stock for the requested
// quantity. This is advisory only; the authoritative check is the
// conditional decrement inside the order-creation transaction.
func (i *InventoryItem) CanFulfill(quantity int32) bool {
	return i.Quantity >= quantity
}
