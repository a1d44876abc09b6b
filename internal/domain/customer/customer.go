package customer

import (
	"strings"

	"github.com/logistics/engine/internal/domain/shared"
)

// Customer is the buyer an order belongs to. Orders reference customers by
// foreign key, so a customer row must exist before an order can be created.
type Customer struct {
	shared.BaseEntity
	Name  string  `gorm:"type:varchar(200);not null"`
	Email string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone *string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM.
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer.
func NewCustomer(name, email string, phone *string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewValidationError("customer name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewValidationError("customer email is invalid")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
	}, nil
}
