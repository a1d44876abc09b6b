package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/persistence"
)

// capturePublisher records published events in order.
type capturePublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *capturePublisher) Publish(ctx context.Context, event shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) byRoutingKey(key string) []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []shared.DomainEvent
	for _, e := range p.events {
		if e.RoutingKey() == key {
			out = append(out, e)
		}
	}
	return out
}

// grantingGateway approves every remote reservation.
type grantingGateway struct{}

func (grantingGateway) CheckAndReserveStock(ctx context.Context, orderID string, items []apporder.ReservationItem, warehouseID string) (*apporder.ReservationResult, error) {
	return &apporder.ReservationResult{Success: true, ReservationID: "reservation-" + orderID}, nil
}

func (grantingGateway) ReleaseReservedStock(ctx context.Context, reservationID, orderID, reason string) (*apporder.ReservationResult, error) {
	return &apporder.ReservationResult{Success: true}, nil
}

func (grantingGateway) CommitReservation(ctx context.Context, reservationID, orderID string) (*apporder.ReservationResult, error) {
	return &apporder.ReservationResult{Success: true}, nil
}

type orderEnv struct {
	db        *TestDB
	service   *apporder.Service
	publisher *capturePublisher
	orders    *persistence.GormOrderRepository
	stock     *persistence.GormInventoryRepository
	customers *persistence.GormCustomerRepository
}

func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()

	db := NewTestDB(t)
	publisher := &capturePublisher{}

	orders := persistence.NewGormOrderRepository(db.DB)
	stock := persistence.NewGormInventoryRepository(db.DB)
	customers := persistence.NewGormCustomerRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	service := apporder.NewService(orders, scope, publisher, grantingGateway{}, zap.NewNop())

	return &orderEnv{
		db:        db,
		service:   service,
		publisher: publisher,
		orders:    orders,
		stock:     stock,
		customers: customers,
	}
}

func (e *orderEnv) seedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Integration Buyer", uuid.NewString()+"@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, e.customers.Create(context.Background(), c))
	return c
}

func (e *orderEnv) seedStock(t *testing.T, quantity int32) *inventory.InventoryItem {
	t.Helper()
	item, err := inventory.NewInventoryItem(
		"SKU-"+uuid.NewString()[:8], "Pallet", uuid.New(), quantity, decimal.NewFromInt(5))
	require.NoError(t, err)
	require.NoError(t, e.stock.Create(context.Background(), item))
	return item
}

func (e *orderEnv) quantityOf(t *testing.T, id uuid.UUID) int32 {
	t.Helper()
	item, err := e.stock.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func createRequest(c *customer.Customer, item *inventory.InventoryItem, quantity int32) apporder.CreateOrderRequest {
	return apporder.CreateOrderRequest{
		CustomerID: c.ID,
		Items: []apporder.CreateOrderItemInput{{
			ProductID: item.ID.String(),
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  quantity,
			UnitPrice: item.Price,
		}},
		Shipping: apporder.ShippingInput{
			AddressLine1:   "100 Main St",
			City:           "Boston",
			State:          "MA",
			PostalCode:     "02101",
			Country:        "US",
			RecipientName:  "Jordan Hayes",
			ShippingMethod: "Standard",
			ShippingCost:   decimal.NewFromInt(7),
		},
		Payment: apporder.PaymentInput{
			PaymentMethod: "Credit Card",
		},
		Currency: "USD",
	}
}

func TestOrderHappyPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	env := newOrderEnv(t)
	c := env.seedCustomer(t)
	item := env.seedStock(t, 10)

	created, err := env.service.Create(ctx, createRequest(c, item, 3))
	require.NoError(t, err)

	assert.True(t, created.TotalAmount.Equal(decimal.NewFromInt(15)), "total %s", created.TotalAmount)
	assert.Equal(t, order.OrderStatusPending, created.Status)
	assert.Equal(t, int32(7), env.quantityOf(t, item.ID))
	assert.Len(t, env.publisher.byRoutingKey(order.RoutingKeyOrderCreated), 1)

	// The committed aggregate is fully readable back.
	persisted, err := env.orders.FindByIDWithDetails(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	require.Len(t, persisted.Items, 1)
	assert.True(t, persisted.Items[0].TotalPrice.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, persisted.Payment)
	assert.True(t, persisted.Payment.Amount.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, persisted.Shipping)
}

func TestOrderContention(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	env := newOrderEnv(t)
	c := env.seedCustomer(t)
	item := env.seedStock(t, 5)

	type outcome struct {
		order *order.Order
		err   error
	}
	results := make(chan outcome, 2)

	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < 2; i++ {
		go func() {
			start.Wait()
			o, err := env.service.Create(ctx, createRequest(c, item, 3))
			results <- outcome{order: o, err: err}
		}()
	}
	start.Done()

	var pending, outOfStock int
	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		require.NotNil(t, r.order)
		switch r.order.Status {
		case order.OrderStatusPending:
			pending++
		case order.OrderStatusOutOfStock:
			outOfStock++
		default:
			t.Fatalf("unexpected status %s", r.order.Status)
		}
	}

	assert.Equal(t, 1, pending, "exactly one order should commit")
	assert.Equal(t, 1, outOfStock, "exactly one order should fall back to out_of_stock")
	assert.Equal(t, int32(2), env.quantityOf(t, item.ID))
}

func TestOrderCancellationCompensation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	env := newOrderEnv(t)
	c := env.seedCustomer(t)
	item := env.seedStock(t, 10)

	created, err := env.service.Create(ctx, createRequest(c, item, 3))
	require.NoError(t, err)
	require.Equal(t, int32(7), env.quantityOf(t, item.ID))

	notes := "test"
	cancelled, err := env.service.UpdateStatus(ctx, created.ID, apporder.UpdateStatusRequest{
		Status: "cancelled",
		Notes:  &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, order.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, int32(10), env.quantityOf(t, item.ID))
	assert.Len(t, env.publisher.byRoutingKey(order.StatusRoutingKey(order.OrderStatusCancelled)), 1)
	assert.Len(t, env.publisher.byRoutingKey(order.RoutingKeyOrderCancelled), 1)

	// Re-cancelling is a no-op and must not restore stock twice.
	_, err = env.service.UpdateStatus(ctx, created.ID, apporder.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, int32(10), env.quantityOf(t, item.ID))
}

func TestOrderInvalidTransition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	env := newOrderEnv(t)
	c := env.seedCustomer(t)
	item := env.seedStock(t, 10)

	created, err := env.service.Create(ctx, createRequest(c, item, 1))
	require.NoError(t, err)

	for _, status := range []string{"processing", "shipped", "delivered"} {
		_, err = env.service.UpdateStatus(ctx, created.ID, apporder.UpdateStatusRequest{Status: status})
		require.NoError(t, err)
	}

	_, err = env.service.UpdateStatus(ctx, created.ID, apporder.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, shared.ErrValidation)

	current, err := env.orders.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusDelivered, current.Status)
}

func TestStatusHistoryRecorded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	env := newOrderEnv(t)
	c := env.seedCustomer(t)
	item := env.seedStock(t, 10)

	created, err := env.service.Create(ctx, createRequest(c, item, 2))
	require.NoError(t, err)

	_, err = env.service.UpdateStatus(ctx, created.ID, apporder.UpdateStatusRequest{Status: "processing"})
	require.NoError(t, err)

	history, err := env.service.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Nil(t, history[0].PreviousStatus)
	assert.Equal(t, "pending", history[0].NewStatus)
	require.NotNil(t, history[1].PreviousStatus)
	assert.Equal(t, "pending", *history[1].PreviousStatus)
	assert.Equal(t, "processing", history[1].NewStatus)
}
