package repository

import (
	"context"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
)

// FinalizedSale bundles everything a single finalize action persists.
// Reminder is nil when the order carries no treatment duration;
// AddressEntry is nil when the delivery address matches the customer's
// latest history entry.
type FinalizedSale struct {
	Customer     *entity.Customer
	AddressEntry *entity.AddressHistoryEntry
	Order        *entity.Order
	Reminder     *entity.Reminder
}

// CheckoutRepository persists a finalized sale atomically: customer
// upsert, optional address history append, order insert and optional
// reminder insert all commit or roll back together.
type CheckoutRepository interface {
	SaveFinalized(ctx context.Context, sale *FinalizedSale) error
}
