package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReminderStatus represents the lifecycle state of a medication reminder.
// The only transition is Pending -> Concluded; a concluded reminder never
// goes back to pending.
type ReminderStatus int

const (
	ReminderPending   ReminderStatus = 0
	ReminderConcluded ReminderStatus = 1
)

func (s ReminderStatus) String() string {
	return [...]string{"Pending", "Concluded"}[s]
}

func (s ReminderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReminderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReminderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = ReminderPending
	case "Concluded":
		*s = ReminderConcluded
	}
	return nil
}

func (s ReminderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReminderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReminderPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReminderStatus(v)
	case int:
		*s = ReminderStatus(v)
	}
	return nil
}
