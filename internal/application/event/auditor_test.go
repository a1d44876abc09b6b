package event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
	busevent "github.com/logistics/engine/internal/infrastructure/event"
)

func newObservedAuditor() (*OrderEventAuditor, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewOrderEventAuditor(zap.New(core)), logs
}

func envelopeFor(t *testing.T, e shared.DomainEvent) *busevent.Envelope {
	t.Helper()
	envelope, err := busevent.NewEnvelope(e)
	require.NoError(t, err)
	return envelope
}

func TestOrderEventAuditor(t *testing.T) {
	ctx := context.Background()

	t.Run("audits order created", func(t *testing.T) {
		auditor, logs := newObservedAuditor()
		orderID := uuid.New()
		envelope := envelopeFor(t, &order.CreatedEvent{
			OrderID:     orderID,
			CustomerID:  uuid.New(),
			Status:      "pending",
			TotalAmount: "125.00",
			ItemsCount:  3,
		})

		require.NoError(t, auditor.HandleOrderCreated(ctx, envelope))

		entries := logs.FilterMessage("Order created").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, orderID.String(), fields["order_id"])
		assert.Equal(t, "pending", fields["status"])
		assert.Equal(t, envelope.ID, fields["envelope_id"])
	})

	t.Run("audits status change with optional fields", func(t *testing.T) {
		auditor, logs := newObservedAuditor()
		prev := "pending"
		notes := "expedited"
		envelope := envelopeFor(t, &order.StatusChangedEvent{
			OrderID:        uuid.New(),
			PreviousStatus: &prev,
			NewStatus:      "processing",
			Notes:          &notes,
		})

		require.NoError(t, auditor.HandleStatusChanged(ctx, envelope))

		entries := logs.FilterMessage("Order status changed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "pending", fields["previous_status"])
		assert.Equal(t, "processing", fields["new_status"])
		assert.Equal(t, "expedited", fields["notes"])
	})

	t.Run("audits cancellation", func(t *testing.T) {
		auditor, logs := newObservedAuditor()
		envelope := envelopeFor(t, order.NewCancelledEvent(uuid.New(), "", nil))

		require.NoError(t, auditor.HandleOrderCancelled(ctx, envelope))

		entries := logs.FilterMessage("Order cancelled").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "No reason provided", entries[0].ContextMap()["reason"])
	})

	t.Run("audits reservation lifecycle", func(t *testing.T) {
		auditor, logs := newObservedAuditor()
		orderID := uuid.New()

		reserved := envelopeFor(t, &inventory.ReservedEvent{
			ReservationID: "res-1",
			OrderID:       orderID,
			Items:         []inventory.ReservedItem{{ProductID: uuid.NewString(), SKU: "SKU-1", Quantity: 2}},
			WarehouseID:   "default-warehouse",
		})
		released := envelopeFor(t, &inventory.ReleasedEvent{
			ReservationID: "res-1",
			OrderID:       orderID,
			Reason:        "order cancelled",
		})

		require.NoError(t, auditor.HandleInventoryReserved(ctx, reserved))
		require.NoError(t, auditor.HandleInventoryReleased(ctx, released))

		assert.Len(t, logs.FilterMessage("Inventory reserved").All(), 1)
		assert.Len(t, logs.FilterMessage("Inventory released").All(), 1)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		auditor, _ := newObservedAuditor()
		envelope := &busevent.Envelope{
			ID:        uuid.NewString(),
			EventType: order.EventTypeOrderCreated,
			Data:      []byte(`{"order_id": 42`),
		}

		assert.Error(t, auditor.HandleOrderCreated(ctx, envelope))
	})
}
