package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logistics/engine/internal/domain/order"
	"github.com/logistics/engine/internal/domain/shared"
)

// Pagination bounds applied by every list query. Boot overrides these from
// configuration before any repository is constructed.
var (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// GormOrderRepository implements order.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID.
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// FindByIDWithDetails finds an order with its items, payment and shipping
// preloaded.
func (r *GormOrderRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Preload("Shipping").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// List returns one page of orders, newest first.
func (r *GormOrderRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[order.Order], error) {
	filter = filter.Normalize(DefaultPageSize, MaxPageSize)

	query := r.applySearch(r.db.WithContext(ctx).Model(&order.Order{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[order.Order]{}, err
	}

	var orders []order.Order
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&orders).Error; err != nil {
		return shared.Paginated[order.Order]{}, err
	}

	return shared.NewPaginated(orders, total, filter.Page, filter.Limit), nil
}

// ListByCustomer returns one page of a customer's orders, newest first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[order.Order], error) {
	filter = filter.Normalize(DefaultPageSize, MaxPageSize)

	query := r.applySearch(
		r.db.WithContext(ctx).Model(&order.Order{}).Where("customer_id = ?", customerID),
		filter,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[order.Order]{}, err
	}

	var orders []order.Order
	if err := query.
		// id breaks ties between rows created in the same instant, so
		// pages stay stable across requests.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&orders).Error; err != nil {
		return shared.Paginated[order.Order]{}, err
	}

	return shared.NewPaginated(orders, total, filter.Page, filter.Limit), nil
}

// Count counts all orders.
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts orders grouped by status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.OrderStatus]int64, error) {
	var rows []struct {
		Status order.OrderStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Create inserts the order row.
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	// Associations are inserted explicitly by the caller inside its
	// transaction; let GORM touch only the orders table here.
	return r.db.WithContext(ctx).Omit("Items", "Payment", "Shipping").Create(o).Error
}

// Update persists the mutable order columns.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":          o.Status,
			"total_amount":    o.TotalAmount,
			"notes":           o.Notes,
			"tracking_number": o.TrackingNumber,
			"updated_at":      o.UpdatedAt,
		}).Error
}

// Delete deletes an order row.
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&order.Order{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateItem inserts a line item.
func (r *GormOrderRepository) CreateItem(ctx context.Context, item *order.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindItemByID finds a line item by its ID.
func (r *GormOrderRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*order.OrderItem, error) {
	var item order.OrderItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindItemsByOrder returns all line items of an order, oldest first.
func (r *GormOrderRepository) FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error) {
	var items []order.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItem persists a mutated line item.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	return r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity":    item.Quantity,
			"total_price": item.TotalPrice,
			"updated_at":  item.UpdatedAt,
		}).Error
}

// DeleteItem deletes a line item.
func (r *GormOrderRepository) DeleteItem(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&order.OrderItem{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreatePayment inserts the order's payment record.
func (r *GormOrderRepository) CreatePayment(ctx context.Context, p *order.PaymentInfo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateShipping inserts the order's shipping record.
func (r *GormOrderRepository) CreateShipping(ctx context.Context, s *order.ShippingInfo) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// AddStatusHistory appends a status history row.
func (r *GormOrderRepository) AddStatusHistory(ctx context.Context, h *order.OrderStatusHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// ListStatusHistory returns an order's history, oldest first.
func (r *GormOrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]order.OrderStatusHistory, error) {
	var rows []order.OrderStatusHistory
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// applySearch applies the free-text filter: textual columns match
// case-insensitively, and a term that parses as a UUID also matches the id.
func (r *GormOrderRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}

	pattern := "%" + filter.Search + "%"
	if id, err := uuid.Parse(filter.Search); err == nil {
		return query.Where(
			"id = ? OR notes ILIKE ? OR tracking_number ILIKE ?",
			id, pattern, pattern,
		)
	}
	return query.Where("notes ILIKE ? OR tracking_number ILIKE ?", pattern, pattern)
}
