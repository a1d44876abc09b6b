package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/logistics/engine/internal/domain/shared"
)

// OrderRepository defines the persistence contract for the order aggregate:
// the order row, its line items, its payment and shipping records, and the
// append-only status history.
//
// Find-style calls return (nil, nil) when the row is absent; only the
// service layer converts a nil result into a NotFound error. Inside a
// transaction scope the same interface is served by a tx-bound instance, so
// create calls participate in the caller's transaction without an explicit
// handle parameter.
type OrderRepository interface {
	// FindByID returns the bare order row.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDWithDetails returns the order with items, payment and
	// shipping loaded.
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*Order, error)

	// List returns one page of orders, newest first. The filter's search
	// term matches the textual columns case-insensitively and the id
	// literally when it parses as one.
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[Order], error)

	// ListByCustomer returns one page of a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[Order], error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns order counts grouped by status.
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)

	// Create inserts the order row.
	Create(ctx context.Context, o *Order) error

	// Update persists the mutable order columns (status, notes, tracking
	// number, total amount, updated_at).
	Update(ctx context.Context, o *Order) error

	// Delete removes an order row and reports whether one was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// CreateItem inserts a line item.
	CreateItem(ctx context.Context, item *OrderItem) error

	// FindItemByID returns a single line item.
	FindItemByID(ctx context.Context, id uuid.UUID) (*OrderItem, error)

	// FindItemsByOrder returns all line items of an order.
	FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)

	// UpdateItem persists a mutated line item.
	UpdateItem(ctx context.Context, item *OrderItem) error

	// DeleteItem removes a line item and reports whether one was removed.
	DeleteItem(ctx context.Context, id uuid.UUID) (bool, error)

	// CreatePayment inserts the order's payment record.
	CreatePayment(ctx context.Context, p *PaymentInfo) error

	// CreateShipping inserts the order's shipping record.
	CreateShipping(ctx context.Context, s *ShippingInfo) error

	// AddStatusHistory appends a status history row.
	AddStatusHistory(ctx context.Context, h *OrderStatusHistory) error

	// ListStatusHistory returns an order's history, oldest first.
	ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]OrderStatusHistory, error)
}
