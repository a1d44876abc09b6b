package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusHistory is an append-only audit row written alongside every
// status change, including the implicit Pending entry on creation. Rows are
// immutable, so there is no updated_at column.
type OrderStatusHistory struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	PreviousStatus *OrderStatus `gorm:"type:varchar(50)"`
	NewStatus      OrderStatus  `gorm:"type:varchar(50);not null"`
	StatusNotes    *string      `gorm:"type:text"`
	ChangedBy      *string      `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}

// NewStatusHistory records a transition from previous to next. previous is
// nil for the initial entry written when the order is created.
func NewStatusHistory(orderID uuid.UUID, previous *OrderStatus, next OrderStatus, notes, changedBy *string) *OrderStatusHistory {
	return &OrderStatusHistory{
		ID:             uuid.New(),
		OrderID:        orderID,
		PreviousStatus: previous,
		NewStatus:      next,
		StatusNotes:    notes,
		ChangedBy:      changedBy,
		CreatedAt:      time.Now().UTC(),
	}
}
