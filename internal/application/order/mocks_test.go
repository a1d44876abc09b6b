package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[order.Order], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[order.Order]), args.Error(1)
}

func (m *mockOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[order.Order], error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).(shared.Paginated[order.Order]), args.Error(1)
}

func (m *mockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context) (map[order.OrderStatus]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[order.OrderStatus]int64)
	return counts, args.Error(1)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) CreateItem(ctx context.Context, item *order.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*order.OrderItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*order.OrderItem)
	return item, args.Error(1)
}

func (m *mockOrderRepository) FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]order.OrderItem)
	return items, args.Error(1)
}

func (m *mockOrderRepository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderRepository) DeleteItem(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) CreatePayment(ctx context.Context, p *order.PaymentInfo) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockOrderRepository) CreateShipping(ctx context.Context, s *order.ShippingInfo) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockOrderRepository) AddStatusHistory(ctx context.Context, h *order.OrderStatusHistory) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockOrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]order.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]order.OrderStatusHistory)
	return rows, args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockInventoryRepository) FindBySKU(ctx context.Context, warehouseID uuid.UUID, sku string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, warehouseID, sku)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockInventoryRepository) FindRandom(ctx context.Context) (*inventory.InventoryItem, error) {
	args := m.Called(ctx)
	item, _ := args.Get(0).(*inventory.InventoryItem)
	return item, args.Error(1)
}

func (m *mockInventoryRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[inventory.InventoryItem], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[inventory.InventoryItem]), args.Error(1)
}

func (m *mockInventoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInventoryRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepository) Update(ctx context.Context, item *inventory.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryRepository) LockForOrder(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *mockInventoryRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, r *inventory.InventoryReservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReservationRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryReservation, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]inventory.InventoryReservation)
	return rows, args.Error(1)
}

func (m *mockReservationRepository) UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, status inventory.ReservationStatus) (int64, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(int64), args.Error(1)
}

// stubTxRepos hands the test's mocks to transaction callbacks, standing in
// for the tx-bound repository set a real scope would build.
type stubTxRepos struct {
	orders       *mockOrderRepository
	inventory    *mockInventoryRepository
	reservations *mockReservationRepository
}

func (r *stubTxRepos) OrderRepo() order.OrderRepository                 { return r.orders }
func (r *stubTxRepos) InventoryRepo() inventory.InventoryRepository     { return r.inventory }
func (r *stubTxRepos) ReservationRepo() inventory.ReservationRepository { return r.reservations }

// stubScope runs transaction callbacks inline against the stub repos.
type stubScope struct {
	repos    *stubTxRepos
	execErr  error
	executed int
}

func (s *stubScope) Execute(ctx context.Context, fn func(TransactionalRepositories) error) error {
	s.executed++
	if s.execErr != nil {
		return s.execErr
	}
	return fn(s.repos)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event shared.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockInventoryGateway struct {
	mock.Mock
}

func (m *mockInventoryGateway) CheckAndReserveStock(ctx context.Context, orderID string, items []ReservationItem, warehouseID string) (*ReservationResult, error) {
	args := m.Called(ctx, orderID, items, warehouseID)
	result, _ := args.Get(0).(*ReservationResult)
	return result, args.Error(1)
}

func (m *mockInventoryGateway) ReleaseReservedStock(ctx context.Context, reservationID, orderID, reason string) (*ReservationResult, error) {
	args := m.Called(ctx, reservationID, orderID, reason)
	result, _ := args.Get(0).(*ReservationResult)
	return result, args.Error(1)
}

func (m *mockInventoryGateway) CommitReservation(ctx context.Context, reservationID, orderID string) (*ReservationResult, error) {
	args := m.Called(ctx, reservationID, orderID)
	result, _ := args.Get(0).(*ReservationResult)
	return result, args.Error(1)
}
