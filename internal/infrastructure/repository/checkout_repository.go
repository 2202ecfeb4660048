package repository

import (
	"context"

	domainRepo "github.com/totalpharma/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *gorm.DB) domainRepo.CheckoutRepository {
	return &checkoutRepository{db: db}
}

// SaveFinalized writes a finalized sale in a single transaction. The
// customer row is upserted by phone so the latest name/address always
// wins; the order, optional address entry and optional reminder commit
// with it or not at all.
func (r *checkoutRepository) SaveFinalized(ctx context.Context, sale *domainRepo.FinalizedSale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "street", "number", "neighborhood", "reference", "updated_at",
			}),
		}).Create(sale.Customer).Error; err != nil {
			return err
		}

		if sale.AddressEntry != nil {
			if err := tx.Create(sale.AddressEntry).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(sale.Order).Error; err != nil {
			return err
		}

		if sale.Reminder != nil {
			sale.Reminder.OrderID = &sale.Order.ID
			if err := tx.Create(sale.Reminder).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
