package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/logistics/engine/internal/domain/shared"
)

// InventoryRepository defines the persistence contract for local stock
// rows. Find-style calls return (nil, nil) when the row is absent.
//
// LockForOrder and DecrementStock are the two halves of the order-creation
// protocol and are only meaningful on a tx-bound instance: locks must be
// taken in ascending id order so concurrent order creations that share rows
// acquire them in the same order, and the decrement is conditional so
// quantity can never go negative.
type InventoryRepository interface {
	// FindByID returns a stock row.
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindBySKU returns the stock row for a SKU in a warehouse.
	FindBySKU(ctx context.Context, warehouseID uuid.UUID, sku string) (*InventoryItem, error)

	// FindRandom returns a uniformly random stock row, nil when the table
	// is empty. Used by the synthetic order producer.
	FindRandom(ctx context.Context) (*InventoryItem, error)

	// List returns one page of stock rows, newest first, with free-text
	// search across sku, name, description and category.
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[InventoryItem], error)

	// Count returns the total number of stock rows.
	Count(ctx context.Context) (int64, error)

	// Create inserts a stock row.
	Create(ctx context.Context, item *InventoryItem) error

	// Update persists a mutated stock row.
	Update(ctx context.Context, item *InventoryItem) error

	// Delete removes a stock row and reports whether one was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// LockForOrder takes SELECT ... FOR UPDATE row locks on the given ids,
	// one query per id in ascending id order.
	LockForOrder(ctx context.Context, ids []uuid.UUID) error

	// DecrementStock conditionally subtracts quantity from a row. It
	// returns false, nil when the row has insufficient stock (the update
	// matched zero rows), true, nil on success.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error)

	// RestoreStock adds quantity back to a row, e.g. when a cancellation
	// compensates an earlier decrement. It reports whether a row was
	// updated; callers log rather than fail when no row matched.
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error)
}

// ReservationRepository persists the local bookkeeping rows for remote
// stock reservations.
type ReservationRepository interface {
	// Create inserts a reservation row.
	Create(ctx context.Context, r *InventoryReservation) error

	// FindByOrder returns an order's reservation rows, oldest first.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryReservation, error)

	// UpdateStatusByOrder moves all of an order's reservation rows to the
	// given status and returns how many rows changed.
	UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, status ReservationStatus) (int64, error)
}
