package entity

import (
	"time"

	"github.com/totalpharma/pdv-api/pkg/money"
)

// Order represents a finalized delivery order. Orders are created exactly
// once per finalize action and are immutable afterwards; there is no edit
// or cancel operation. The customer reference is the phone key and is not
// a hard foreign key: orphaned references are tolerated.
type Order struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceiptNo     string       `gorm:"size:100;unique;not null" json:"receipt_no"`
	OrderDate     time.Time    `gorm:"type:date;not null;index" json:"order_date"`
	CustomerPhone string       `gorm:"size:32;not null;index" json:"customer_phone"`
	CustomerName  string       `gorm:"size:255" json:"customer_name"`
	Courier       string       `gorm:"size:100;index" json:"courier"`
	ProductValue  money.Amount `gorm:"not null" json:"product_value"` // cents
	DeliveryFee   money.Amount `gorm:"not null" json:"delivery_fee"`  // cents
	Total         money.Amount `gorm:"not null" json:"total"`         // cents

	// The payment plan is collapsed into two free-text fields at write
	// time: a short summary ("Dinheiro + Cartao 3x") and a verbose
	// per-leg detail.
	PaymentSummary string `gorm:"size:100" json:"payment_summary"`
	PaymentDetail  string `gorm:"type:text" json:"payment_detail"`

	// Cash settlement. Nil when no leg is paid in cash: "not applicable"
	// is a different user-visible state than zero change.
	CashTendered *money.Amount `json:"cash_tendered,omitempty"`
	CashChange   *money.Amount `json:"cash_change,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
