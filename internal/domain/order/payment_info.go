package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/logistics/engine/internal/domain/shared"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusProcessing        PaymentStatus = "processing"
	PaymentStatusSucceeded         PaymentStatus = "succeeded"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
)

var paymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusProcessing,
	PaymentStatusSucceeded,
	PaymentStatusFailed,
	PaymentStatusRefunded,
	PaymentStatusPartiallyRefunded,
	PaymentStatusCancelled,
}

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known PaymentStatus.
func (s PaymentStatus) IsValid() bool {
	for _, known := range paymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Code returns the compact integer form of the status, 0 for unknown.
func (s PaymentStatus) Code() int32 {
	for i, known := range paymentStatuses {
		if s == known {
			return int32(i + 1)
		}
	}
	return 0
}

// ParsePaymentStatus converts the wire form back to a status.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", shared.NewValidationError(fmt.Sprintf("unknown payment status %q", s))
	}
	return status, nil
}

// PaymentStatusFromCode converts the compact integer form back to a status.
func PaymentStatusFromCode(code int32) (PaymentStatus, error) {
	if code < 1 || int(code) > len(paymentStatuses) {
		return "", shared.NewValidationError(fmt.Sprintf("unknown payment status code %d", code))
	}
	return paymentStatuses[code-1], nil
}

// PaymentInfo records how an order is paid. Exactly one row exists per
// order; state changes happen in place.
type PaymentInfo struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	PaymentMethod string          `gorm:"type:varchar(50);not null"`
	TransactionID *string         `gorm:"type:varchar(255)"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Status        PaymentStatus   `gorm:"type:varchar(50);not null;default:'pending'"`
	PaymentDate   *time.Time
}

// TableName returns the table name for GORM.
func (PaymentInfo) TableName() string {
	return "payment_info"
}

// NewPaymentInfo creates a pending payment record for an order.
func NewPaymentInfo(orderID uuid.UUID, paymentMethod string, amount decimal.Decimal, currency string) (*PaymentInfo, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewValidationError("order ID cannot be empty")
	}
	if paymentMethod == "" {
		return nil, shared.NewValidationError("payment method cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("payment amount must be positive")
	}
	if currency == "" {
		currency = "USD"
	}

	return &PaymentInfo{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		PaymentMethod: paymentMethod,
		Amount:        amount,
		Currency:      currency,
		Status:        PaymentStatusPending,
	}, nil
}

// MarkSucceeded records a completed payment with its gateway transaction ID.
func (p *PaymentInfo) MarkSucceeded(transactionID string) {
	now := time.Now().UTC()
	p.Status = PaymentStatusSucceeded
	p.TransactionID = &transactionID
	p.PaymentDate = &now
	p.Touch()
}

// MarkFailed records a failed payment attempt.
func (p *PaymentInfo) MarkFailed() {
	p.Status = PaymentStatusFailed
	p.Touch()
}
