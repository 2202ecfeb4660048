package request

import "github.com/totalpharma/pdv-api/internal/domain/enum"

// PaymentRequest describes how the order is settled. Amount fields are
// raw strings because the counter form accepts comma decimals. A missing
// method defaults to cash, the overwhelmingly common case at the counter.
type PaymentRequest struct {
	Method             enum.PaymentMethod `json:"method"`
	Installments       int                `json:"installments" binding:"omitempty,min=0,max=12"`
	Split              bool               `json:"split"`
	SecondMethod       enum.PaymentMethod `json:"second_method"`
	SecondInstallments int                `json:"second_installments" binding:"omitempty,min=0,max=12"`
	FirstAmount        string             `json:"first_amount"`
	CashTendered       string             `json:"cash_tendered"`
}

// CheckoutRequest is the finalize payload from the counter form.
type CheckoutRequest struct {
	Phone        string `json:"phone" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference"`

	Courier      string `json:"courier"`
	ProductValue string `json:"product_value" binding:"required"`
	DeliveryFee  string `json:"delivery_fee"`

	Payment PaymentRequest `json:"payment" binding:"required"`

	Medication   string `json:"medication"`
	DurationDays int    `json:"duration_days" binding:"omitempty,min=0"`
}

// QuoteRequest previews the settlement; customer fields are optional at
// this stage.
type QuoteRequest struct {
	ProductValue string         `json:"product_value" binding:"required"`
	DeliveryFee  string         `json:"delivery_fee"`
	Payment      PaymentRequest `json:"payment" binding:"required"`
	DurationDays int            `json:"duration_days" binding:"omitempty,min=0"`
}
