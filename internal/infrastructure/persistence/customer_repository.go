package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/shared"
)

// GormCustomerRepository implements customer.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by their ID.
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmail finds a customer by their email.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindRandom returns a uniformly random customer, nil when the table is
// empty. ORDER BY RANDOM() is fine at the table sizes the synthetic
// producer runs against.
func (r *GormCustomerRepository) FindRandom(ctx context.Context) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.db.WithContext(ctx).
		Order("RANDOM()").
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List returns one page of customers, newest first.
func (r *GormCustomerRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[customer.Customer], error) {
	filter = filter.Normalize(DefaultPageSize, MaxPageSize)

	query := r.applySearch(r.db.WithContext(ctx).Model(&customer.Customer{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[customer.Customer]{}, err
	}

	var customers []customer.Customer
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&customers).Error; err != nil {
		return shared.Paginated[customer.Customer]{}, err
	}

	return shared.NewPaginated(customers, total, filter.Page, filter.Limit), nil
}

// applySearch applies the free-text filter: textual columns match
// case-insensitively, and a term that parses as a UUID also matches the id.
func (r *GormCustomerRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}

	pattern := "%" + filter.Search + "%"
	if id, err := uuid.Parse(filter.Search); err == nil {
		return query.Where(
			"id = ? OR name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			id, pattern, pattern, pattern,
		)
	}
	return query.Where(
		"name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
		pattern, pattern, pattern,
	)
}

// Count counts all customers.
func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&customer.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists reports whether a customer row exists.
func (r *GormCustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&customer.Customer{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a customer row.
func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Update persists a mutated customer row.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete deletes a customer row.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&customer.Customer{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
