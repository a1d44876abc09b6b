package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/logistics/engine/internal/domain/shared"
)

// ReservationStatus is the lifecycle state of a remote stock reservation.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusRejected  ReservationStatus = "rejected"
	ReservationStatusReleased  ReservationStatus = "released"
)

var reservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusRejected,
	ReservationStatusReleased,
}

func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known ReservationStatus.
func (s ReservationStatus) IsValid() bool {
	for _, known := range reservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Code returns the compact integer form of the status, 0 for unknown.
func (s ReservationStatus) Code() int32 {
	for i, known := range reservationStatuses {
		if s == known {
			return int32(i + 1)
		}
	}
	return 0
}

// ParseReservationStatus converts the wire form back to a status.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", shared.NewValidationError(fmt.Sprintf("unknown reservation status %q", s))
	}
	return status, nil
}

// ReservationStatusFromCode converts the compact integer form back to a status.
func ReservationStatusFromCode(code int32) (ReservationStatus, error) {
	if code < 1 || int(code) > len(reservationStatuses) {
		return "", shared.NewValidationError(fmt.Sprintf("unknown reservation status code %d", code))
	}
	return reservationStatuses[code-1], nil
}

// InventoryReservation is the local bookkeeping row for a soft-hold placed
// on the remote inventory service before an order commits. One row exists
// per reserved line item.
type InventoryReservation struct {
	shared.BaseEntity
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID string            `gorm:"type:varchar(100);not null"`
	SKU       string            `gorm:"type:varchar(100);not null;column:sku"`
	Quantity  int32             `gorm:"not null"`
	Status    ReservationStatus `gorm:"type:varchar(50);not null;default:'pending'"`
	ExpiresAt *time.Time
}

// TableName returns the table name for GORM.
func (InventoryReservation) TableName() string {
	return "inventory_reservations"
}

// NewReservation creates a pending reservation row for one order line.
func NewReservation(orderID uuid.UUID, productID, sku string, quantity int32, expiresAt *time.Time) (*InventoryReservation, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order ID cannot be empty")
	}
	if productID == "" {
		return nil, shared.NewValidationError("product ID cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewValidationError("quantity must be at least 1")
	}

	return &InventoryReservation{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		SKU:        sku,
		Quantity:   quantity,
		Status:     ReservationStatusPending,
		ExpiresAt:  expiresAt,
	}, nil
}
