package order

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
	"github.com/logistics/engine/internal/infrastructure/telemetry"
)

// DefaultWarehouseID is the warehouse passed to the remote inventory
// service when a request does not name one. Single-warehouse first-fit is
// the only allocation strategy.
const DefaultWarehouseID = "default-warehouse"

// insufficientStockError carries the offending product id out of the
// order-creation transaction so the caller can run the out-of-stock
// fallback.
type insufficientStockError struct {
	productID uuid.UUID
}

func (e *insufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.productID)
}

// Service is the order orchestrator. It coordinates the persistence
// gateway, the remote inventory service and the event bus to drive orders
// through their lifecycle. Post-commit side effects (publishes, remote
// reservation release/commit) are best-effort: failures are logged and the
// committed order stays authoritative.
type Service struct {
	orders    order.OrderRepository
	scope     TransactionScope
	publisher shared.EventPublisher
	inventory InventoryGateway
	logger    *zap.Logger
	validate  *validator.Validate
}

// NewService creates the orchestrator.
func NewService(
	orders order.OrderRepository,
	scope TransactionScope,
	publisher shared.EventPublisher,
	gateway InventoryGateway,
	logger *zap.Logger,
) *Service {
	return &Service{
		orders:    orders,
		scope:     scope,
		publisher: publisher,
		inventory: gateway,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Create creates an order atomically: advisory pre-reserve against the
// remote inventory service, then a single transaction that locks the
// referenced inventory rows in ascending id order, writes the order
// aggregate, and conditionally decrements stock. On insufficient stock the
// transaction rolls back and the order is preserved as out_of_stock so the
// customer can be informed.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "create")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCustomerID, req.CustomerID,
		"items_count", len(req.Items),
	)

	if err := s.validateCreate(&req); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// The order entity exists before its line items so the items and the
	// pre-reserve carry the definitive order id.
	o, err := order.NewOrder(req.CustomerID, orderTotal(req.Items), req.Currency, req.Notes)
	if err != nil {
		return nil, err
	}
	items, err := s.buildItems(o.ID, req)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, o.ID)

	payment, err := order.NewPaymentInfo(o.ID, req.Payment.PaymentMethod, o.TotalAmount, o.Currency)
	if err != nil {
		return nil, err
	}
	payment.TransactionID = req.Payment.TransactionID

	shipping, err := order.NewShippingInfo(
		o.ID,
		req.Shipping.AddressLine1, req.Shipping.AddressLine2,
		req.Shipping.City, req.Shipping.State, req.Shipping.PostalCode, req.Shipping.Country,
		req.Shipping.RecipientName, req.Shipping.RecipientPhone,
		req.Shipping.ShippingMethod, req.Shipping.ShippingCost,
	)
	if err != nil {
		return nil, err
	}

	reservationID, err := s.preReserve(ctx, o.ID, items)
	if err != nil {
		return nil, err
	}

	lockIDs, quantities, err := inventoryTargets(items)
	if err != nil {
		return nil, err
	}

	txErr := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.InventoryRepo().LockForOrder(ctx, lockIDs); err != nil {
			return shared.NewDatabaseError(err)
		}
		if err := s.persistAggregate(ctx, repos, o, items, payment, shipping, reservationID); err != nil {
			return err
		}
		for _, target := range quantities {
			ok, err := repos.InventoryRepo().DecrementStock(ctx, target.id, target.quantity)
			if err != nil {
				return shared.NewDatabaseError(err)
			}
			if !ok {
				return &insufficientStockError{productID: target.id}
			}
		}
		return nil
	})

	if txErr != nil {
		var insufficient *insufficientStockError
		if errors.As(txErr, &insufficient) {
			telemetry.AddEvent(span, "insufficient_stock",
				telemetry.SpanAttrProductID, insufficient.productID,
			)
			return s.markOutOfStock(ctx, o, items, payment, shipping, insufficient.productID)
		}
		telemetry.RecordError(span, txErr)
		var domainErr *shared.DomainError
		if errors.As(txErr, &domainErr) {
			return nil, txErr
		}
		return nil, shared.NewDatabaseError(txErr)
	}

	o.Items = items
	o.Payment = payment
	o.Shipping = shipping

	s.afterCreateCommit(ctx, o, reservationID)
	return o, nil
}

// preReserve places the advisory hold. A business rejection fails the
// request; a transport failure is logged and the flow continues because
// the local transaction is authoritative.
func (s *Service) preReserve(ctx context.Context, orderID uuid.UUID, items []order.OrderItem) (string, error) {
	reservationItems := make([]ReservationItem, len(items))
	for i, item := range items {
		reservationItems[i] = ReservationItem{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
		}
	}

	result, err := s.inventory.CheckAndReserveStock(ctx, orderID.String(), reservationItems, DefaultWarehouseID)
	if err != nil {
		s.logger.Warn("Inventory pre-reserve failed, continuing with local stock check",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return "", nil
	}
	if !result.Success {
		return "", shared.NewBadRequest(fmt.Sprintf("Inventory check failed: %s", result.Message))
	}
	return result.ReservationID, nil
}

// persistAggregate writes the order row, its items, payment, shipping, the
// initial status history entry, and the reservation bookkeeping rows, all
// inside the caller's transaction.
func (s *Service) persistAggregate(
	ctx context.Context,
	repos TransactionalRepositories,
	o *order.Order,
	items []order.OrderItem,
	payment *order.PaymentInfo,
	shipping *order.ShippingInfo,
	reservationID string,
) error {
	if err := repos.OrderRepo().Create(ctx, o); err != nil {
		return shared.NewDatabaseError(err)
	}
	for i := range items {
		if err := repos.OrderRepo().CreateItem(ctx, &items[i]); err != nil {
			return shared.NewDatabaseError(err)
		}
	}
	if err := repos.OrderRepo().CreatePayment(ctx, payment); err != nil {
		return shared.NewDatabaseError(err)
	}
	if err := repos.OrderRepo().CreateShipping(ctx, shipping); err != nil {
		return shared.NewDatabaseError(err)
	}
	history := order.NewStatusHistory(o.ID, nil, o.Status, nil, nil)
	if err := repos.OrderRepo().AddStatusHistory(ctx, history); err != nil {
		return shared.NewDatabaseError(err)
	}
	if reservationID != "" {
		for i := range items {
			reservation, err := inventory.NewReservation(o.ID, items[i].ProductID, items[i].SKU, items[i].Quantity, nil)
			if err != nil {
				return err
			}
			if err := repos.ReservationRepo().Create(ctx, reservation); err != nil {
				return shared.NewDatabaseError(err)
			}
		}
	}
	return nil
}

// markOutOfStock preserves the order as out_of_stock after the creation
// transaction rolled back on a failed decrement. The aggregate is written
// in a fresh transaction with no inventory touched and no OrderCreated
// event published.
func (s *Service) markOutOfStock(
	ctx context.Context,
	o *order.Order,
	items []order.OrderItem,
	payment *order.PaymentInfo,
	shipping *order.ShippingInfo,
	productID uuid.UUID,
) (*order.Order, error) {
	note := fmt.Sprintf("Insufficient inventory for product %s", productID)
	o.Status = order.OrderStatusOutOfStock
	o.SetNotes(note)

	txErr := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.OrderRepo().Create(ctx, o); err != nil {
			return shared.NewDatabaseError(err)
		}
		for i := range items {
			if err := repos.OrderRepo().CreateItem(ctx, &items[i]); err != nil {
				return shared.NewDatabaseError(err)
			}
		}
		if err := repos.OrderRepo().CreatePayment(ctx, payment); err != nil {
			return shared.NewDatabaseError(err)
		}
		if err := repos.OrderRepo().CreateShipping(ctx, shipping); err != nil {
			return shared.NewDatabaseError(err)
		}
		history := order.NewStatusHistory(o.ID, nil, order.OrderStatusOutOfStock, &note, nil)
		if err := repos.OrderRepo().AddStatusHistory(ctx, history); err != nil {
			return shared.NewDatabaseError(err)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Warn("Could not preserve out-of-stock order",
			zap.String("order_id", o.ID.String()),
			zap.Error(txErr),
		)
		return nil, shared.NewBadRequest(note)
	}

	s.logger.Info("Order marked out_of_stock due to insufficient inventory",
		zap.String("order_id", o.ID.String()),
		zap.String("product_id", productID.String()),
	)

	o.Items = items
	o.Payment = payment
	o.Shipping = shipping
	return o, nil
}

// afterCreateCommit runs the best-effort post-commit side effects: the
// OrderCreated publish, the remote reservation commit, and the local
// reservation confirmation.
func (s *Service) afterCreateCommit(ctx context.Context, o *order.Order, reservationID string) {
	if err := s.publisher.Publish(ctx, order.NewCreatedEvent(o)); err != nil {
		s.logger.Warn("Failed to publish OrderCreated event",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}

	if reservationID == "" {
		return
	}

	if _, err := s.inventory.CommitReservation(ctx, reservationID, o.ID.String()); err != nil {
		s.logger.Warn("Failed to commit remote reservation",
			zap.String("order_id", o.ID.String()),
			zap.String("reservation_id", reservationID),
			zap.Error(err),
		)
		return
	}

	if err := s.confirmReservations(ctx, o.ID); err != nil {
		s.logger.Warn("Failed to confirm local reservation rows",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}

	items := make([]inventory.ReservedItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = inventory.ReservedItem{ProductID: item.ProductID, SKU: item.SKU, Quantity: item.Quantity}
	}
	reservedEvent := &inventory.ReservedEvent{
		ReservationID: reservationID,
		OrderID:       o.ID,
		Items:         items,
		WarehouseID:   DefaultWarehouseID,
	}
	if err := s.publisher.Publish(ctx, reservedEvent); err != nil {
		s.logger.Warn("Failed to publish InventoryReserved event",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *Service) confirmReservations(ctx context.Context, orderID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		_, err := repos.ReservationRepo().UpdateStatusByOrder(ctx, orderID, inventory.ReservationStatusConfirmed)
		return err
	})
}

// UpdateStatus moves an order to the target status. Cancellation runs the
// inventory compensation inside a transaction; every other transition is a
// simple row update. Events and the remote reservation release happen
// after the store change and are non-fatal.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*order.Order, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status",
		telemetry.WithAttribute(telemetry.SpanAttrOrderID, id),
		telemetry.WithAttribute(telemetry.SpanAttrOrderStatus, req.Status),
	)
	defer span.End()

	target, err := order.ParseOrderStatus(req.Status)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	o, err := s.orders.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	if o == nil {
		return nil, shared.NewNotFound("Order", id)
	}

	if o.Status == target {
		return o, nil
	}

	previous := o.Status
	if !previous.CanTransitionTo(target) {
		return nil, shared.NewValidationError(
			fmt.Sprintf("invalid status transition from %s to %s", previous, target))
	}

	if target == order.OrderStatusCancelled {
		if err := s.cancelWithCompensation(ctx, o, req.Notes); err != nil {
			return nil, err
		}
	} else {
		if err := o.UpdateStatus(target); err != nil {
			return nil, err
		}
		if req.Notes != nil {
			o.SetNotes(*req.Notes)
		}
		if err := s.orders.Update(ctx, o); err != nil {
			return nil, shared.NewDatabaseError(err)
		}
		history := order.NewStatusHistory(o.ID, &previous, target, req.Notes, nil)
		if err := s.orders.AddStatusHistory(ctx, history); err != nil {
			s.logger.Warn("Failed to append status history",
				zap.String("order_id", o.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.afterStatusCommit(ctx, o, previous, target, req.Notes)
	return o, nil
}

// cancelWithCompensation restores the inventory every order item debited,
// inside one transaction with the status update. Locks are taken in
// ascending id order, the same order creation uses, and the restore has no
// upper-bound guard: restoration must always succeed.
func (s *Service) cancelWithCompensation(ctx context.Context, o *order.Order, notes *string) error {
	previous := o.Status

	lockIDs, quantities, err := inventoryTargets(o.Items)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.InventoryRepo().LockForOrder(ctx, lockIDs); err != nil {
			return shared.NewDatabaseError(err)
		}
		for _, target := range quantities {
			restored, err := repos.InventoryRepo().RestoreStock(ctx, target.id, target.quantity)
			if err != nil {
				return shared.NewDatabaseError(err)
			}
			if !restored {
				s.logger.Warn("No inventory row matched during cancellation restore",
					zap.String("order_id", o.ID.String()),
					zap.String("product_id", target.id.String()),
				)
			}
		}

		if err := o.UpdateStatus(order.OrderStatusCancelled); err != nil {
			return err
		}
		if notes != nil {
			o.SetNotes(*notes)
		}
		if err := repos.OrderRepo().Update(ctx, o); err != nil {
			return shared.NewDatabaseError(err)
		}

		history := order.NewStatusHistory(o.ID, &previous, order.OrderStatusCancelled, notes, nil)
		if err := repos.OrderRepo().AddStatusHistory(ctx, history); err != nil {
			return shared.NewDatabaseError(err)
		}

		if _, err := repos.ReservationRepo().UpdateStatusByOrder(ctx, o.ID, inventory.ReservationStatusReleased); err != nil {
			return shared.NewDatabaseError(err)
		}
		return nil
	})
}

// afterStatusCommit publishes the status-changed event and, for
// cancellations, the cancelled event plus the remote reservation release.
func (s *Service) afterStatusCommit(ctx context.Context, o *order.Order, previous, target order.OrderStatus, notes *string) {
	statusEvent := order.NewStatusChangedEvent(o.ID, previous, target, nil, notes)
	if err := s.publisher.Publish(ctx, statusEvent); err != nil {
		s.logger.Warn("Failed to publish OrderStatusChanged event",
			zap.String("order_id", o.ID.String()),
			zap.String("status", target.String()),
			zap.Error(err),
		)
	}

	if target != order.OrderStatusCancelled {
		return
	}

	reason := "Order cancelled"
	if notes != nil && *notes != "" {
		reason = *notes
	}

	cancelledEvent := order.NewCancelledEvent(o.ID, reason, nil)
	if err := s.publisher.Publish(ctx, cancelledEvent); err != nil {
		s.logger.Warn("Failed to publish OrderCancelled event",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}

	reservationID := "reservation-" + o.ID.String()
	if _, err := s.inventory.ReleaseReservedStock(ctx, reservationID, o.ID.String(), reason); err != nil {
		s.logger.Warn("Failed to release remote reservation",
			zap.String("order_id", o.ID.String()),
			zap.String("reservation_id", reservationID),
			zap.Error(err),
		)
		return
	}

	releasedEvent := &inventory.ReleasedEvent{
		ReservationID: reservationID,
		OrderID:       o.ID,
		Reason:        reason,
	}
	if err := s.publisher.Publish(ctx, releasedEvent); err != nil {
		s.logger.Warn("Failed to publish InventoryReleased event",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}
}

// UpdateOrderItem changes a line item's quantity, recomputes its total and
// refreshes the parent order's total amount.
func (s *Service) UpdateOrderItem(ctx context.Context, itemID uuid.UUID, quantity int32) (*order.OrderItem, error) {
	if quantity < 1 {
		return nil, shared.NewValidationError("quantity must be at least 1")
	}

	item, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	if item == nil {
		return nil, shared.NewNotFound("OrderItem", itemID)
	}

	if err := item.UpdateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateItem(ctx, item); err != nil {
		return nil, shared.NewDatabaseError(err)
	}

	if err := s.refreshOrderTotal(ctx, item.OrderID); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteOrderItem removes a line item and refreshes the parent order's
// total amount.
func (s *Service) DeleteOrderItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return shared.NewDatabaseError(err)
	}
	if item == nil {
		return shared.NewNotFound("OrderItem", itemID)
	}

	removed, err := s.orders.DeleteItem(ctx, itemID)
	if err != nil {
		return shared.NewDatabaseError(err)
	}
	if !removed {
		return shared.NewNotFound("OrderItem", itemID)
	}

	return s.refreshOrderTotal(ctx, item.OrderID)
}

func (s *Service) refreshOrderTotal(ctx context.Context, orderID uuid.UUID) error {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return shared.NewDatabaseError(err)
	}
	if o == nil {
		return shared.NewNotFound("Order", orderID)
	}

	items, err := s.orders.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return shared.NewDatabaseError(err)
	}

	o.SetTotalAmount(order.SumItemTotals(items))
	if err := s.orders.Update(ctx, o); err != nil {
		return shared.NewDatabaseError(err)
	}
	return nil
}

// GetByID returns an order with its items, payment and shipping loaded.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	if o == nil {
		return nil, shared.NewNotFound("Order", id)
	}
	return o, nil
}

// List returns one page of orders.
func (s *Service) List(ctx context.Context, filter shared.Filter) (shared.Paginated[order.Order], error) {
	page, err := s.orders.List(ctx, filter)
	if err != nil {
		return shared.Paginated[order.Order]{}, shared.NewDatabaseError(err)
	}
	return page, nil
}

// ListByCustomer returns one page of a customer's orders.
func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[order.Order], error) {
	page, err := s.orders.ListByCustomer(ctx, customerID, filter)
	if err != nil {
		return shared.Paginated[order.Order]{}, shared.NewDatabaseError(err)
	}
	return page, nil
}

// GetOrderItems returns all line items of an order.
func (s *Service) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	if o == nil {
		return nil, shared.NewNotFound("Order", orderID)
	}

	items, err := s.orders.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	return items, nil
}

// Counts returns overall and per-status order counts.
func (s *Service) Counts(ctx context.Context) (OrderCounts, error) {
	total, err := s.orders.Count(ctx)
	if err != nil {
		return OrderCounts{}, shared.NewDatabaseError(err)
	}
	byStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return OrderCounts{}, shared.NewDatabaseError(err)
	}

	counts := OrderCounts{Total: total, ByStatus: make(map[string]int64, len(byStatus))}
	for status, n := range byStatus {
		counts.ByStatus[status.String()] = n
	}
	return counts, nil
}

// GetStatusHistory returns an order's status transitions, oldest first.
func (s *Service) GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]StatusHistoryEntry, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}
	if o == nil {
		return nil, shared.NewNotFound("Order", orderID)
	}

	rows, err := s.orders.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, shared.NewDatabaseError(err)
	}

	entries := make([]StatusHistoryEntry, len(rows))
	for i, row := range rows {
		var prev *string
		if row.PreviousStatus != nil {
			p := row.PreviousStatus.String()
			prev = &p
		}
		entries[i] = StatusHistoryEntry{
			ID:             row.ID,
			OrderID:        row.OrderID,
			PreviousStatus: prev,
			NewStatus:      row.NewStatus.String(),
			StatusNotes:    row.StatusNotes,
			ChangedBy:      row.ChangedBy,
			CreatedAt:      row.CreatedAt,
		}
	}
	return entries, nil
}

// validateCreate checks the request before any I/O. The validator covers
// structural rules; decimal fields are checked by hand because validator
// tags cannot see inside decimal.Decimal.
func (s *Service) validateCreate(req *CreateOrderRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return shared.NewValidationError(err.Error())
	}
	for _, item := range req.Items {
		if !item.UnitPrice.IsPositive() {
			return shared.NewValidationError(
				fmt.Sprintf("unit price must be positive for product %s", item.ProductID))
		}
	}
	if req.Shipping.ShippingCost.IsNegative() {
		return shared.NewValidationError("shipping cost cannot be negative")
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	return nil
}

// orderTotal sums the request's line totals. NewOrderItem derives the same
// per-line product, so the order total always equals the item sum.
func orderTotal(items []CreateOrderItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, input := range items {
		total = total.Add(input.UnitPrice.Mul(decimal.NewFromInt32(input.Quantity)))
	}
	return total
}

// buildItems constructs the order's line items.
func (s *Service) buildItems(orderID uuid.UUID, req CreateOrderRequest) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(req.Items))
	for _, input := range req.Items {
		item, err := order.NewOrderItem(orderID, input.ProductID, input.SKU, input.Name, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// inventoryTarget pairs a local inventory row id with the quantity an
// order moves.
type inventoryTarget struct {
	id       uuid.UUID
	quantity int32
}

// inventoryTargets parses the product ids of the given items and returns
// the distinct lock ids in ascending order plus the per-item quantities.
// Ascending lock order is what makes concurrent order transactions
// deadlock-free; callers must pass lockIDs to LockForOrder unmodified.
func inventoryTargets(items []order.OrderItem) ([]uuid.UUID, []inventoryTarget, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	lockIDs := make([]uuid.UUID, 0, len(items))
	targets := make([]inventoryTarget, 0, len(items))

	for _, item := range items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, nil, shared.NewValidationError(
				fmt.Sprintf("product id %q is not a valid UUID", item.ProductID))
		}
		targets = append(targets, inventoryTarget{id: id, quantity: item.Quantity})
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			lockIDs = append(lockIDs, id)
		}
	}

	// Bytewise order matches the database's ordering of the uuid type.
	slices.SortFunc(lockIDs, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return lockIDs, targets, nil
}
