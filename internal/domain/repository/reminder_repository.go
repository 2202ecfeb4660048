package repository

import (
	"context"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// ReminderRepository defines the interface for reminder data operations
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetByID(ctx context.Context, id uint) (*entity.Reminder, error)
	Update(ctx context.Context, reminder *entity.Reminder) error
	Delete(ctx context.Context, id uint) error
	// ListPendingDue returns pending reminders whose due date is on or
	// before the given day, oldest first.
	ListPendingDue(ctx context.Context, asOf time.Time) ([]entity.Reminder, error)
	// ListPending returns every pending reminder, soonest first.
	ListPending(ctx context.Context) ([]entity.Reminder, error)
	List(ctx context.Context, params *pagination.PaginationParams, status *int) ([]entity.Reminder, int64, error)
	ListByCustomer(ctx context.Context, phone string) ([]entity.Reminder, error)
}
