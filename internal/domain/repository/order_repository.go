package repository

import (
	"context"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations. Orders
// are immutable after creation, so there is no Update or Delete.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListByDate returns every order placed on the given calendar day,
	// unpaginated, for reports and export.
	ListByDate(ctx context.Context, date time.Time) ([]entity.Order, error)
	ListByCustomer(ctx context.Context, phone string, params *pagination.PaginationParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	CustomerPhone string
	Courier       string
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
