package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"gorm.io/gorm"
)

func newReminderService(db *gorm.DB, now time.Time) *ReminderService {
	svc := NewReminderService(
		infra.NewReminderRepository(db),
		infra.NewSettingsRepository(db),
	)
	svc.now = func() time.Time { return now }
	return svc
}

func TestScheduleReminder(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newReminderService(db, now)

	reminder, err := svc.Schedule(context.Background(), &ScheduleInput{
		CustomerPhone: "11987654321",
		CustomerName:  "Maria Souza",
		Medication:    "Losartana 50mg",
		DurationDays:  10,
	})
	require.NoError(t, err)

	// 10-day supply minus the default 3-day lead
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), reminder.DueDate)
	assert.Equal(t, enum.ReminderPending, reminder.Status)
	assert.NotZero(t, reminder.ID)
	assert.Nil(t, reminder.OrderID)
}

func TestScheduleRejectsNonPositiveDuration(t *testing.T) {
	db := newTestDB(t)
	svc := newReminderService(db, time.Now())

	_, err := svc.Schedule(context.Background(), &ScheduleInput{
		CustomerPhone: "11987654321",
		DurationDays:  0,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidDuration)
}

func TestDueAndUpcomingReminders(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newReminderService(db, now)
	ctx := context.Background()

	overdue := &entity.Reminder{
		CustomerPhone: "11911111111",
		CustomerName:  "Joana",
		Medication:    "Metformina",
		DueDate:       time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		Status:        enum.ReminderPending,
	}
	dueToday := &entity.Reminder{
		CustomerPhone: "11922222222",
		CustomerName:  "Carlos",
		Medication:    "Losartana",
		DueDate:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        enum.ReminderPending,
	}
	nextWeek := &entity.Reminder{
		CustomerPhone: "11933333333",
		CustomerName:  "Ana",
		Medication:    "Insulina",
		DueDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:        enum.ReminderPending,
	}
	concluded := &entity.Reminder{
		CustomerPhone: "11944444444",
		CustomerName:  "Paulo",
		Medication:    "Omeprazol",
		DueDate:       time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		Status:        enum.ReminderConcluded,
	}
	require.NoError(t, db.Create(overdue).Error)
	require.NoError(t, db.Create(dueToday).Error)
	require.NoError(t, db.Create(nextWeek).Error)
	require.NoError(t, db.Create(concluded).Error)

	due, err := svc.DueReminders(ctx)
	require.NoError(t, err)
	require.Len(t, due, 2)
	// Oldest first
	assert.Equal(t, "Joana", due[0].CustomerName)
	assert.True(t, due[0].Overdue)
	assert.Equal(t, -2, due[0].DaysUntilDue)
	assert.Equal(t, "Carlos", due[1].CustomerName)
	assert.True(t, due[1].DueToday)
	assert.False(t, due[1].Overdue)

	// Upcoming is the whole pending worklist soonest first, with the
	// overdue and due-today rows classified, not filtered out
	upcoming, err := svc.UpcomingReminders(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "Joana", upcoming[0].CustomerName)
	assert.True(t, upcoming[0].Overdue)
	assert.Equal(t, "Carlos", upcoming[1].CustomerName)
	assert.True(t, upcoming[1].DueToday)
	assert.Equal(t, "Ana", upcoming[2].CustomerName)
	assert.Equal(t, 5, upcoming[2].DaysUntilDue)
	assert.False(t, upcoming[2].DueToday)
	assert.False(t, upcoming[2].Overdue)
}

func TestConcludeReminder(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newReminderService(db, now)
	ctx := context.Background()

	reminder, err := svc.Schedule(ctx, &ScheduleInput{
		CustomerPhone: "11987654321",
		CustomerName:  "Maria Souza",
		Medication:    "Losartana 50mg",
		DurationDays:  10,
	})
	require.NoError(t, err)

	concluded, err := svc.Conclude(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ReminderConcluded, concluded.Status)
	require.NotNil(t, concluded.ConcludedAt)
	assert.Equal(t, now, *concluded.ConcludedAt)

	// Concluding is terminal
	_, err = svc.Conclude(ctx, reminder.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyConcluded)
}

func TestDeleteReminder(t *testing.T) {
	db := newTestDB(t)
	svc := newReminderService(db, time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC))
	ctx := context.Background()

	reminder, err := svc.Schedule(ctx, &ScheduleInput{
		CustomerPhone: "11987654321",
		CustomerName:  "Maria Souza",
		Medication:    "Losartana 50mg",
		DurationDays:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, reminder.DurationDays)

	require.NoError(t, svc.Delete(ctx, reminder.ID))

	err = svc.Delete(ctx, reminder.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestConcludeUnknownReminder(t *testing.T) {
	db := newTestDB(t)
	svc := newReminderService(db, time.Now())

	_, err := svc.Conclude(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestReminderMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newReminderService(db, time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC))
	ctx := context.Background()

	reminder, err := svc.Schedule(ctx, &ScheduleInput{
		CustomerPhone: "11987654321",
		CustomerName:  "Maria Souza",
		Medication:    "Losartana 50mg",
		DurationDays:  10,
	})
	require.NoError(t, err)

	msg, err := svc.Message(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Contains(t, msg, "Maria Souza")
	assert.Contains(t, msg, "Losartana 50mg")
}
