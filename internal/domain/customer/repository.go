package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/logistics/engine/internal/domain/shared"
)

// CustomerRepository defines the persistence contract for customers.
// Find-style calls return (nil, nil) when the row is absent.
type CustomerRepository interface {
	// FindByID returns a customer row.
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail returns the customer with the given email.
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindRandom returns a uniformly random customer, nil when the table
	// is empty. Used by the synthetic order producer.
	FindRandom(ctx context.Context) (*Customer, error)

	// List returns one page of customers, newest first, with free-text
	// search across name, email and phone.
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[Customer], error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)

	// Exists reports whether a customer row exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create inserts a customer row.
	Create(ctx context.Context, c *Customer) error

	// Update persists a mutated customer row.
	Update(ctx context.Context, c *Customer) error

	// Delete removes a customer row and reports whether one was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
