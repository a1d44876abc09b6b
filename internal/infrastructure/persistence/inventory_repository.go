package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/logistics/engine/internal/domain/inventory"
	"github.com/logistics/engine/internal/domain/shared"
)

// GormInventoryRepository implements inventory.InventoryRepository using
// GORM. The locking and decrement calls are only meaningful on a tx-bound
// instance handed out by the transaction scope.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds a stock row by its ID.
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindBySKU finds the stock row for a SKU in a warehouse.
func (r *GormInventoryRepository) FindBySKU(ctx context.Context, warehouseID uuid.UUID, sku string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND sku = ?", warehouseID, sku).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindRandom returns a uniformly random stock row, nil when the table is
// empty.
func (r *GormInventoryRepository) FindRandom(ctx context.Context) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).Order("RANDOM()").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List returns one page of stock rows, newest first.
func (r *GormInventoryRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[inventory.InventoryItem], error) {
	filter = filter.Normalize(DefaultPageSize, MaxPageSize)

	query := r.applySearch(r.db.WithContext(ctx).Model(&inventory.InventoryItem{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[inventory.InventoryItem]{}, err
	}

	var items []inventory.InventoryItem
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&items).Error; err != nil {
		return shared.Paginated[inventory.InventoryItem]{}, err
	}

	return shared.NewPaginated(items, total, filter.Page, filter.Limit), nil
}

// Count counts all stock rows.
func (r *GormInventoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.InventoryItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a stock row.
func (r *GormInventoryRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update persists a mutated stock row.
func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a stock row.
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// applySearch applies the free-text filter: textual columns match
// case-insensitively, and a term that parses as a UUID also matches the id.
func (r *GormInventoryRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}

	pattern := "%" + filter.Search + "%"
	if id, err := uuid.Parse(filter.Search); err == nil {
		return query.Where(
			"id = ? OR sku ILIKE ? OR name ILIKE ? OR description ILIKE ? OR category ILIKE ?",
			id, pattern, pattern, pattern, pattern,
		)
	}
	return query.Where(
		"sku ILIKE ? OR name ILIKE ? OR description ILIKE ? OR category ILIKE ?",
		pattern, pattern, pattern, pattern,
	)
}

// LockForOrder takes SELECT ... FOR UPDATE row locks on the given ids, one
// query per id. Callers pass ids in ascending order so every transaction
// that shares rows acquires locks in the same sequence.
func (r *GormInventoryRepository) LockForOrder(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		var item inventory.InventoryItem
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&item, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

// DecrementStock conditionally subtracts quantity from a row. The guard in
// the WHERE clause is what keeps quantity from going negative; a zero-row
// update means insufficient stock, not an error.
func (r *GormInventoryRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RestoreStock adds quantity back to a row with no upper-bound guard:
// compensation must always succeed.
func (r *GormInventoryRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int32) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
