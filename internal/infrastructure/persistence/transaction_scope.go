package persistence

import (
	"context"

	"gorm.io/gorm"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
)

// GormTransactionScope implements the orchestrator's TransactionScope over
// a single database transaction. Every repository handed to the callback
// is bound to the same *gorm.DB transaction, so the callback's writes
// commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside a transaction. A non-nil return from fn rolls the
// transaction back and is returned unchanged to the caller.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{
			orders:       NewGormOrderRepository(tx),
			inventory:    NewGormInventoryRepository(tx),
			reservations: NewGormReservationRepository(tx),
		})
	})
}

// txRepositories is the tx-bound repository set handed to scope callbacks.
type txRepositories struct {
	orders       *GormOrderRepository
	inventory    *GormInventoryRepository
	reservations *GormReservationRepository
}

func (r *txRepositories) OrderRepo() order.OrderRepository {
	return r.orders
}

func (r *txRepositories) InventoryRepo() inventory.InventoryRepository {
	return r.inventory
}

func (r *txRepositories) ReservationRepo() inventory.ReservationRepository {
	return r.reservations
}
