package entity

import (
	"strings"
	"time"

	"github.com/totalpharma/pdv-api/pkg/phone"
)

// Customer represents a delivery customer, keyed by canonical phone number.
// The phone key contains only digits and is the stable lookup key across
// orders, address history and reminders. Customers are never deleted
// automatically.
type Customer struct {
	Phone        string    `gorm:"primaryKey;size:32" json:"phone"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Street       string    `gorm:"size:255" json:"street"`
	Number       string    `gorm:"size:32" json:"number"`
	Neighborhood string    `gorm:"size:255" json:"neighborhood"`
	Reference    string    `gorm:"type:text" json:"reference"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	AddressHistory []AddressHistoryEntry `gorm:"foreignKey:CustomerPhone;references:Phone" json:"address_history,omitempty"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// PhoneDisplay returns the cosmetic form of the phone key.
func (c *Customer) PhoneDisplay() string {
	return phone.Format(c.Phone)
}

// AddressLine renders the current address as a single line for receipts.
func (c *Customer) AddressLine() string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(c.Street); s != "" {
		if n := strings.TrimSpace(c.Number); n != "" {
			s += ", " + n
		}
		parts = append(parts, s)
	}
	if n := strings.TrimSpace(c.Neighborhood); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, " - ")
}

// AddressHistoryEntry is a point-in-time address snapshot for a customer.
// Entries are append-only and recalled in last-used order; a new entry is
// written on finalize only when it differs from the most recent one, so
// repeat orders to the same address do not pile up duplicates.
type AddressHistoryEntry struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerPhone string    `gorm:"size:32;not null;index" json:"customer_phone"`
	Street        string    `gorm:"size:255" json:"street"`
	Number        string    `gorm:"size:32" json:"number"`
	Neighborhood  string    `gorm:"size:255" json:"neighborhood"`
	Reference     string    `gorm:"type:text" json:"reference"`
	LastUsedAt    time.Time `gorm:"not null;index" json:"last_used_at"`
}

// TableName returns the table name for the AddressHistoryEntry model
func (AddressHistoryEntry) TableName() string {
	return "address_history"
}

// SameAddress reports whether the entry points at the same place as the
// customer's current address snapshot.
func (e *AddressHistoryEntry) SameAddress(c *Customer) bool {
	return strings.EqualFold(strings.TrimSpace(e.Street), strings.TrimSpace(c.Street)) &&
		strings.EqualFold(strings.TrimSpace(e.Number), strings.TrimSpace(c.Number)) &&
		strings.EqualFold(strings.TrimSpace(e.Neighborhood), strings.TrimSpace(c.Neighborhood)) &&
		strings.EqualFold(strings.TrimSpace(e.Reference), strings.TrimSpace(c.Reference))
}
