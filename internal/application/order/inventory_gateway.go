package order

import "context"

// ReservationItem is one line of a remote stock reservation request.
type ReservationItem struct {
	ProductID string
	SKU       string
	Quantity  int32
}

// ReservationResult carries the business outcome of a reservation call.
// Success=false is a business rejection, not a transport failure; transport
// failures come back as errors.
type ReservationResult struct {
	Success       bool
	ReservationID string
	Message       string
}

// InventoryGateway is the orchestrator's view of the remote inventory
// service. The pre-reserve is advisory: the local database transaction is
// authoritative for correctness, so transport failures are logged by the
// caller and never fail an order.
type InventoryGateway interface {
	// CheckAndReserveStock places a soft-hold on remote stock for a
	// pending order.
	CheckAndReserveStock(ctx context.Context, orderID string, items []ReservationItem, warehouseID string) (*ReservationResult, error)

	// ReleaseReservedStock releases a previously placed hold.
	ReleaseReservedStock(ctx context.Context, reservationID, orderID, reason string) (*ReservationResult, error)

	// CommitReservation converts a hold into a committed deduction after
	// the local transaction has committed.
	CommitReservation(ctx context.Context, reservationID, orderID string) (*ReservationResult, error)
}
