package simulation

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
)

type mockOrderCreator struct {
	mock.Mock
}

func (m *mockOrderCreator) Create(ctx context.Context, req apporder.CreateOrderRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepository) FindRandom(ctx context.Context) (*customer.Customer, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[customer.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[customer.Customer]), args.Error(1)
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockCatalogRepository) FindBySKU(ctx context.Context, warehouseID uuid.UUID, sku string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, warehouseID, sku)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockCatalogRepository) FindRandom(ctx context.Context) (*inventory.InventoryItem, error) {
	args := m.Called(ctx)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockCatalogRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[inventory.InventoryItem], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[inventory.InventoryItem]), args.Error(1)
}

func (m *mockCatalogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalogRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCatalogRepository) Update(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCatalogRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCatalogRepository) LockForOrder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *mockCatalogRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockCatalogRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}
