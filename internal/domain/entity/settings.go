package entity

import "time"

// PharmacySettings is the single row of store-level configuration editable
// at runtime: the receipt header, the default area code applied to short
// phone numbers, and reminder lead time. Boot config seeds it; the API can
// change it afterwards.
type PharmacySettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Receipt header
	StoreName    string `gorm:"size:255;default:'Farmacia'" json:"store_name"`
	StoreAddress string `gorm:"size:255" json:"store_address"`
	StorePhone   string `gorm:"size:32" json:"store_phone"`

	// Phone normalization
	DefaultAreaCode string `gorm:"size:4;default:'11'" json:"default_area_code"`

	// Reminders come due this many days before the medication runs out.
	ReminderLeadDays int `gorm:"default:3" json:"reminder_lead_days"`

	// Default delivery fee preloaded in the checkout form, in cents.
	DefaultDeliveryFee int64 `gorm:"default:0" json:"default_delivery_fee"`

	// Receipt width in characters; thermal printers are 32 or 48 columns.
	ReceiptWidth int `gorm:"default:48" json:"receipt_width"`
}

// TableName returns the table name for the PharmacySettings model
func (PharmacySettings) TableName() string {
	return "pharmacy_settings"
}
