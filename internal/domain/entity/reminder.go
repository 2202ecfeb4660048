package entity

import (
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/enum"
)

// Reminder is a scheduled repurchase nudge for a continuous-use medication.
// One reminder is created per finalized order that carries a treatment
// duration; it comes due a few days before the medication runs out so the
// attendant can contact the customer ahead of time.
type Reminder struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerPhone string              `gorm:"size:32;not null;index" json:"customer_phone"`
	CustomerName  string              `gorm:"size:255" json:"customer_name"`
	Medication    string              `gorm:"size:255" json:"medication"`
	OrderID       *uint               `gorm:"index" json:"order_id,omitempty"`
	DurationDays  int                 `gorm:"not null;default:0" json:"duration_days"`
	DueDate       time.Time           `gorm:"type:date;not null;index" json:"due_date"`
	Status        enum.ReminderStatus `gorm:"not null;default:0;index" json:"status"`
	ConcludedAt   *time.Time          `json:"concluded_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TableName returns the table name for the Reminder model
func (Reminder) TableName() string {
	return "reminders"
}

// IsDue reports whether the reminder is pending and its due date has
// arrived, comparing calendar days in the given reference time's location.
func (r *Reminder) IsDue(now time.Time) bool {
	if r.Status != enum.ReminderPending {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !r.DueDate.After(today)
}
