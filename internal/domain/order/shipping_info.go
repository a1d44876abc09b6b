package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/logistics/engine/internal/domain/shared"
)

// ShippingStatus is the lifecycle state of a shipment.
type ShippingStatus string

const (
	ShippingStatusPending        ShippingStatus = "pending"
	ShippingStatusProcessing     ShippingStatus = "processing"
	ShippingStatusShipped        ShippingStatus = "shipped"
	ShippingStatusInTransit      ShippingStatus = "in_transit"
	ShippingStatusOutForDelivery ShippingStatus = "out_for_delivery"
	ShippingStatusDelivered      ShippingStatus = "delivered"
	ShippingStatusFailed         ShippingStatus = "failed"
	ShippingStatusReturned       ShippingStatus = "returned"
	ShippingStatusCancelled      ShippingStatus = "cancelled"
)

var shippingStatuses = []ShippingStatus{
	ShippingStatusPending,
	ShippingStatusProcessing,
	ShippingStatusShipped,
	ShippingStatusInTransit,
	ShippingStatusOutForDelivery,
	ShippingStatusDelivered,
	ShippingStatusFailed,
	ShippingStatusReturned,
	ShippingStatusCancelled,
}

func (s ShippingStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known ShippingStatus.
func (s ShippingStatus) IsValid() bool {
	for _, known := range shippingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Code returns the compact integer form of the status, 0 for unknown.
func (s ShippingStatus) Code() int32 {
	for i, known := range shippingStatuses {
		if s == known {
			return int32(i + 1)
		}
	}
	return 0
}

// ParseShippingStatus converts the wire form back to a status.
func ParseShippingStatus(s string) (ShippingStatus, error) {
	status := ShippingStatus(s)
	if !status.IsValid() {
		return "", shared.NewValidationError(fmt.Sprintf("unknown shipping status %q", s))
	}
	return status, nil
}

// ShippingStatusFromCode converts the compact integer form back to a status.
func ShippingStatusFromCode(code int32) (ShippingStatus, error) {
	if code < 1 || int(code) > len(shippingStatuses) {
		return "", shared.NewValidationError(fmt.Sprintf("unknown shipping status code %d", code))
	}
	return shippingStatuses[code-1], nil
}

// ShippingInfo records where and how an order ships. One row per order,
// created in the same transaction as the order itself.
type ShippingInfo struct {
	shared.BaseEntity
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	AddressLine1     string          `gorm:"type:varchar(255);not null"`
	AddressLine2     *string         `gorm:"type:varchar(255)"`
	City             string          `gorm:"type:varchar(100);not null"`
	State            string          `gorm:"type:varchar(100);not null"`
	PostalCode       string          `gorm:"type:varchar(20);not null"`
	Country          string          `gorm:"type:varchar(100);not null"`
	RecipientName    string          `gorm:"type:varchar(200);not null"`
	RecipientPhone   *string         `gorm:"type:varchar(50)"`
	ShippingMethod   string          `gorm:"type:varchar(50);not null"`
	ShippingCost     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TrackingNumber   *string         `gorm:"type:varchar(100)"`
	Carrier          *string         `gorm:"type:varchar(100)"`
	Status           ShippingStatus  `gorm:"type:varchar(50);not null;default:'pending'"`
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
}

// TableName returns the table name for GORM.
func (ShippingInfo) TableName() string {
	return "shipping_info"
}

// NewShippingInfo creates a pending shipping record for an order.
func NewShippingInfo(orderID uuid.UUID, addressLine1 string, addressLine2 *string, city, state, postalCode, country, recipientName string, recipientPhone *string, shippingMethod string, shippingCost decimal.Decimal) (*ShippingInfo, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order ID cannot be empty")
	}
	if addressLine1 == "" {
		return nil, shared.NewValidationError("address line 1 cannot be empty")
	}
	if recipientName == "" {
		return nil, shared.NewValidationError("recipient name cannot be empty")
	}
	if shippingMethod == "" {
		return nil, shared.NewValidationError("shipping method cannot be empty")
	}
	if shippingCost.IsNegative() {
		return nil, shared.NewValidationError("shipping cost cannot be negative")
	}

	return &ShippingInfo{
		BaseEntity:     shared.NewBaseEntity(),
		OrderID:        orderID,
		AddressLine1:   addressLine1,
		AddressLine2:   addressLine2,
		City:           city,
		State:          state,
		PostalCode:     postalCode,
		Country:        country,
		RecipientName:  recipientName,
		RecipientPhone: recipientPhone,
		ShippingMethod: shippingMethod,
		ShippingCost:   shippingCost,
		Status:         ShippingStatusPending,
	}, nil
}

// FormattedAddress renders the destination as a multi-line postal address.
func (s *ShippingInfo) FormattedAddress() string {
	line2 := ""
	if s.AddressLine2 != nil && *s.AddressLine2 != "" {
		line2 = *s.AddressLine2 + "\n"
	}
	return fmt.Sprintf("%s\n%s%s, %s %s\n%s", s.AddressLine1, line2, s.City, s.State, s.PostalCode, s.Country)
}

// MarkShipped records carrier hand-off with a tracking number.
func (s *ShippingInfo) MarkShipped(carrier, trackingNumber string) {
	s.Status = ShippingStatusShipped
	s.Carrier = &carrier
	s.TrackingNumber = &trackingNumber
	s.Touch()
}

// MarkDelivered records the actual delivery time.
func (s *ShippingInfo) MarkDelivered(at time.Time) {
	s.Status = ShippingStatusDelivered
	s.ActualDelivery = &at
	s.Touch()
}
