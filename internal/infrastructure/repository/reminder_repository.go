package repository

import (
	"context"
	"errors"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	domainRepo "github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) domainRepo.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) GetByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.WithContext(ctx).First(&reminder, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reminder, err
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Reminder{}, "id = ?", id).Error
}

func (r *reminderRepository) ListPendingDue(ctx context.Context, asOf time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	_, endOfDay := dayRange(asOf)
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", enum.ReminderPending, endOfDay).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) ListPending(ctx context.Context) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.ReminderPending).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) List(ctx context.Context, params *pagination.PaginationParams, status *int) ([]entity.Reminder, int64, error) {
	var reminders []entity.Reminder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Reminder{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error

	return reminders, total, err
}

func (r *reminderRepository) ListByCustomer(ctx context.Context, phone string) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("due_date DESC").
		Find(&reminders).Error
	return reminders, err
}
