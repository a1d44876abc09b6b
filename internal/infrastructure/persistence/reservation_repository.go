package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logistics/engine/internal/domain/inventory"
)

// GormReservationRepository implements inventory.ReservationRepository
// using GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Create inserts a reservation row.
func (r *GormReservationRepository) Create(ctx context.Context, reservation *inventory.InventoryReservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// FindByOrder returns an order's reservation rows, oldest first.
func (r *GormReservationRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryReservation, error) {
	var rows []inventory.InventoryReservation
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatusByOrder moves all of an order's reservation rows to the given
// status.
func (r *GormReservationRepository) UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, status inventory.ReservationStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.InventoryReservation{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
