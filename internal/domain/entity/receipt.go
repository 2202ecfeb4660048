package entity

import "github.com/totalpharma/pdv-api/pkg/money"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptPayment is one settled leg as shown on the receipt.
type ReceiptPayment struct {
	Method string       `json:"method"`
	Amount money.Amount `json:"amount"`
}

// Receipt is a value object representing a printable delivery receipt.
// It is NOT a database entity — it is composed from order/customer data at
// print time.
type Receipt struct {
	Header    ReceiptHeader `json:"header"`
	ReceiptNo string        `json:"receipt_no"`
	Date      string        `json:"date"`

	Customer string `json:"customer,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Courier  string `json:"courier,omitempty"`

	ProductValue money.Amount `json:"product_value"`
	DeliveryFee  money.Amount `json:"delivery_fee"`
	Total        money.Amount `json:"total"`

	PaymentSummary string           `json:"payment_summary"`
	Payments       []ReceiptPayment `json:"payments,omitempty"`

	// Nil when no cash leg exists; "not applicable" prints differently
	// than zero change.
	CashTendered *money.Amount `json:"cash_tendered,omitempty"`
	CashChange   *money.Amount `json:"cash_change,omitempty"`
}
