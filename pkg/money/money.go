package money

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents. All arithmetic on order totals and
// payment legs happens in cents so that displayed values always add up.
type Amount int64

// Parse converts locale-flexible numeric text into an Amount. The decimal
// separator may be a comma or a dot ("12,50" and "12.50" are both R$ 12.50).
//
// Any input that does not parse, including the empty string, yields zero.
// This mirrors how the counter UI treats blank fields; a non-empty string
// that fails to parse is logged so data-entry problems leave a trace.
func Parse(text string) Amount {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("money: coercing unparseable amount %q to 0.00", text)
		return 0
	}

	return FromFloat(f)
}

// FromFloat converts a decimal value to cents, rounding at the second
// decimal place.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float64 returns the amount as a decimal number.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with exactly two decimals, e.g. "12.50".
func (a Amount) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', 2, 64)
}

// BRL formats the amount with the currency prefix used on receipts.
func (a Amount) BRL() string {
	return "R$ " + a.String()
}

// MarshalJSON renders the amount as a decimal number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number and stores it as cents.
func (a *Amount) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: invalid amount %s", data)
	}
	*a = FromFloat(f)
	return nil
}
