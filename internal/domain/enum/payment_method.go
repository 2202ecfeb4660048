package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a payment leg is settled
type PaymentMethod int

const (
	PaymentCash PaymentMethod = 0
	PaymentPix  PaymentMethod = 1
	PaymentCard PaymentMethod = 2
)

// String returns the label used on receipts and payment summaries.
// Accent-free on purpose: thermal printers with the default code page
// mangle "Cartão".
func (m PaymentMethod) String() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentPix:
		return "Pix"
	case PaymentCard:
		return "Cartao"
	}
	return "Desconhecido"
}

// IsValid reports whether the method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentPix || m == PaymentCard
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "Dinheiro", "dinheiro", "cash", "Cash":
		*m = PaymentCash
	case "Pix", "pix":
		*m = PaymentPix
	case "Cartao", "Cartão", "cartao", "card", "Card":
		*m = PaymentCard
	default:
		*m = PaymentMethod(-1)
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
