package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
)

// openTestDB opens an in-memory SQLite database with the full schema.
// Search queries use ILIKE and stay on sqlmock; everything else runs
// against real SQL here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&customer.Customer{},
		&order.Order{},
		&order.OrderItem{},
		&order.PaymentInfo{},
		&order.ShippingInfo{},
		&order.OrderStatusHistory{},
		&inventory.InventoryItem{},
		&inventory.InventoryReservation{},
	)
	require.NoError(t, err)

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer("Dana Reeve", uuid.New().String()+"@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uuid.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(customerID, decimal.NewFromFloat(99.98), "USD", nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(o).Error)
	return o
}

func seedInventoryItem(t *testing.T, db *gorm.DB, quantity int32) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(
		"SKU-"+uuid.New().String()[:8], "Forklift Tire", uuid.New(), quantity, decimal.NewFromFloat(49.99))
	require.NoError(t, err)
	require.NoError(t, db.Create(item).Error)
	return item
}
