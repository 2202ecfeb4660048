package repository

import (
	"context"
	"errors"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	domainRepo "github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "phone = ?", phone).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if search != "" {
		// LIKE instead of ILIKE so the same query runs on sqlite installs
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) ListAddressHistory(ctx context.Context, phone string, limit int) ([]entity.AddressHistoryEntry, error) {
	var entries []entity.AddressHistoryEntry
	query := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("last_used_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *customerRepository) LatestAddress(ctx context.Context, phone string) (*entity.AddressHistoryEntry, error) {
	var entry entity.AddressHistoryEntry
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("last_used_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}
