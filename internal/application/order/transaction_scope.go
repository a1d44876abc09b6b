package order

import (
	"context"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories the
// orchestrator writes. All repository operations performed through the
// scoped repositories are part of the same database transaction and commit
// or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped to
// the current transaction. Row locks taken through InventoryRepo are held
// until the transaction finishes.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction.
	OrderRepo() order.OrderRepository

	// InventoryRepo returns the inventory repository scoped to the current transaction.
	InventoryRepo() inventory.InventoryRepository

	// ReservationRepo returns the reservation repository scoped to the current transaction.
	ReservationRepo() inventory.ReservationRepository
}
