package repository

import (
	"context"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations.
// Customers are keyed by canonical phone number.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, phone string) error
	// List returns customers with page-based pagination, optionally
	// filtered by a name/phone search term.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)

	// Address history, most recent first.
	ListAddressHistory(ctx context.Context, phone string, limit int) ([]entity.AddressHistoryEntry, error)
	LatestAddress(ctx context.Context, phone string) (*entity.AddressHistoryEntry, error)
}
