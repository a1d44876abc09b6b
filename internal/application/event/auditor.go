// Package event holds the application-side consumers of the order event
// stream.
package event

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	busevent "github.com/logistics/engine/internal/infrastructure/event"
	"github.com/logistics/engine/internal/infrastructure/logger"
)

// OrderEventAuditor consumes the order event stream and writes one
// structured audit line per event. It is the reference consumer for the
// pipeline: duplicate suppression happens in the bus consumer through the
// idempotency store, so handlers only see each envelope once.
type OrderEventAuditor struct {
	logger *zap.Logger
}

// NewOrderEventAuditor creates an auditor.
func NewOrderEventAuditor(logger *zap.Logger) *OrderEventAuditor {
	return &OrderEventAuditor{logger: logger}
}

// Register subscribes the auditor's handlers on the consumer. The order.#
// binding also matches event types nothing here handles; the consumer
// acknowledges and drops those.
func (a *OrderEventAuditor) Register(consumer *busevent.Consumer) {
	consumer.Register("order.#", order.EventTypeOrderCreated, a.HandleOrderCreated)
	consumer.Register("order.#", order.EventTypeOrderStatusChanged, a.HandleStatusChanged)
	consumer.Register("order.#", order.EventTypeOrderCancelled, a.HandleOrderCancelled)
	consumer.Register("inventory.#", inventory.EventTypeInventoryReserved, a.HandleInventoryReserved)
	consumer.Register("inventory.#", inventory.EventTypeInventoryReleased, a.HandleInventoryReleased)
}

// HandleOrderCreated audits an order-created event.
func (a *OrderEventAuditor) HandleOrderCreated(ctx context.Context, envelope *busevent.Envelope) error {
	var payload order.CreatedEvent
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}

	logger.WithTraceContext(ctx, a.logger).Info("Order created",
		zap.String("envelope_id", envelope.ID),
		zap.String("order_id", payload.OrderID.String()),
		zap.String("customer_id", payload.CustomerID.String()),
		zap.String("status", payload.Status),
		zap.String("total_amount", payload.TotalAmount),
		zap.Int32("items_count", payload.ItemsCount),
	)
	return nil
}

// HandleStatusChanged audits a status transition.
func (a *OrderEventAuditor) HandleStatusChanged(ctx context.Context, envelope *busevent.Envelope) error {
	var payload order.StatusChangedEvent
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("envelope_id", envelope.ID),
		zap.String("order_id", payload.OrderID.String()),
		zap.String("new_status", payload.NewStatus),
	}
	if payload.PreviousStatus != nil {
		fields = append(fields, zap.String("previous_status", *payload.PreviousStatus))
	}
	if payload.Notes != nil {
		fields = append(fields, zap.String("notes", *payload.Notes))
	}

	logger.WithTraceContext(ctx, a.logger).Info("Order status changed", fields...)
	return nil
}

// HandleOrderCancelled audits a cancellation.
func (a *OrderEventAuditor) HandleOrderCancelled(ctx context.Context, envelope *busevent.Envelope) error {
	var payload order.CancelledEvent
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}

	logger.WithTraceContext(ctx, a.logger).Info("Order cancelled",
		zap.String("envelope_id", envelope.ID),
		zap.String("order_id", payload.OrderID.String()),
		zap.String("reason", payload.Reason),
	)
	return nil
}

// HandleInventoryReserved audits a confirmed remote reservation.
func (a *OrderEventAuditor) HandleInventoryReserved(ctx context.Context, envelope *busevent.Envelope) error {
	var payload inventory.ReservedEvent
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}

	logger.WithTraceContext(ctx, a.logger).Info("Inventory reserved",
		zap.String("envelope_id", envelope.ID),
		zap.String("order_id", payload.OrderID.String()),
		zap.String("reservation_id", payload.ReservationID),
	)
	return nil
}

// HandleInventoryReleased audits a remote reservation release.
func (a *OrderEventAuditor) HandleInventoryReleased(ctx context.Context, envelope *busevent.Envelope) error {
	var payload inventory.ReleasedEvent
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return err
	}

	logger.WithTraceContext(ctx, a.logger).Info("Inventory released",
		zap.String("envelope_id", envelope.ID),
		zap.String("order_id", payload.OrderID.String()),
		zap.String("reservation_id", payload.ReservationID),
	)
	return nil
}
