package service

import (
	"context"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/messaging"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// ReminderService handles the repurchase reminder queue. Scheduling on
// finalize is done by CheckoutService; this service covers the worklist
// the attendant sees and the conclude action.
type ReminderService struct {
	reminderRepo repository.ReminderRepository
	settingsRepo repository.SettingsRepository

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewReminderService creates a new reminder service
func NewReminderService(reminderRepo repository.ReminderRepository, settingsRepo repository.SettingsRepository) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// ScheduleInput represents a manually created reminder, for medications
// sold before the system existed or bought elsewhere.
type ScheduleInput struct {
	CustomerPhone string
	CustomerName  string
	Medication    string
	DurationDays  int
}

// Schedule creates a reminder due DurationDays minus the configured lead
// time from today.
func (s *ReminderService) Schedule(ctx context.Context, input *ScheduleInput) (*entity.Reminder, error) {
	if input.DurationDays <= 0 {
		return nil, apperror.ErrInvalidDuration
	}

	leadDays := 3
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		leadDays = settings.ReminderLeadDays
	}

	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	reminder := &entity.Reminder{
		CustomerPhone: input.CustomerPhone,
		CustomerName:  input.CustomerName,
		Medication:    input.Medication,
		DurationDays:  input.DurationDays,
		DueDate:       today.AddDate(0, 0, input.DurationDays-leadDays),
		Status:        enum.ReminderPending,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

// ClassifiedReminder is a reminder annotated for the worklist view:
// how many days until it comes due and which bucket it falls in.
type ClassifiedReminder struct {
	entity.Reminder
	DaysUntilDue int  `json:"days_until_due"`
	DueToday     bool `json:"due_today"`
	Overdue      bool `json:"overdue"`
}

func (s *ReminderService) classify(reminders []entity.Reminder) []ClassifiedReminder {
	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	classified := make([]ClassifiedReminder, 0, len(reminders))
	for _, r := range reminders {
		days := int(r.DueDate.Sub(today).Hours() / 24)
		classified = append(classified, ClassifiedReminder{
			Reminder:     r,
			DaysUntilDue: days,
			DueToday:     days == 0,
			Overdue:      days < 0,
		})
	}
	return classified
}

// DueReminders returns the pending reminders that should be acted on
// today: everything due today or overdue, oldest first.
func (s *ReminderService) DueReminders(ctx context.Context) ([]ClassifiedReminder, error) {
	reminders, err := s.reminderRepo.ListPendingDue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return s.classify(reminders), nil
}

// UpcomingReminders returns every pending reminder soonest first, each
// classified so the worklist can group overdue, due-today and future
// rows in one view.
func (s *ReminderService) UpcomingReminders(ctx context.Context) ([]ClassifiedReminder, error) {
	reminders, err := s.reminderRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return s.classify(reminders), nil
}

// ListReminders lists reminders with pagination, optionally filtered by
// status.
func (s *ReminderService) ListReminders(ctx context.Context, params *pagination.PaginationParams, status *int) (*pagination.PaginatedResult[entity.Reminder], error) {
	reminders, total, err := s.reminderRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(reminders, pag), nil
}

// Conclude marks a reminder as handled. Concluding is terminal: a second
// conclude fails rather than silently succeeding, so two attendants
// working the same queue notice the collision.
func (s *ReminderService) Conclude(ctx context.Context, id uint) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, apperror.NewNotFoundError("Reminder")
	}
	if reminder.Status == enum.ReminderConcluded {
		return nil, apperror.ErrAlreadyConcluded
	}

	now := s.now()
	reminder.Status = enum.ReminderConcluded
	reminder.ConcludedAt = &now

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Delete removes a reminder, for entries created by mistake.
func (s *ReminderService) Delete(ctx context.Context, id uint) error {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return apperror.NewNotFoundError("Reminder")
	}
	return s.reminderRepo.Delete(ctx, id)
}

// Message builds the WhatsApp nudge text for a reminder.
func (s *ReminderService) Message(ctx context.Context, id uint) (string, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if reminder == nil {
		return "", apperror.NewNotFoundError("Reminder")
	}
	return messaging.ReminderText(messaging.ReminderInfo{
		Name:       reminder.CustomerName,
		Phone:      reminder.CustomerPhone,
		Medication: reminder.Medication,
	}), nil
}
