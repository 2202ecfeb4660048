package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		areaCode string
		want     string
	}{
		{"formatted mobile with area code", "(11) 98765-4321", "11", "11987654321"},
		{"mobile without area code", "98765-4321", "11", "11987654321"},
		{"landline without area code", "8765-4321", "21", "2187654321"},
		{"digits only passthrough", "11987654321", "11", "11987654321"},
		{"spaces and dots", "11 9876.5 4321", "11", "11987654321"},
		{"too short preserved", "123", "11", "123"},
		{"too long preserved", "5511987654321", "11", "5511987654321"},
		{"empty", "", "11", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, tt.areaCode))
		})
	}
}

func TestNormalizeFormatRoundTrip(t *testing.T) {
	// Formatting a canonical key and normalizing it again must land on
	// the same key, or a reformatted number would split a customer in two
	for _, raw := range []string{"(11) 98765-4321", "98765-4321", "8765-4321", "11987654321"} {
		canonical := Normalize(raw, "11")
		assert.Equal(t, canonical, Normalize(Format(canonical), "11"), "raw input %q", raw)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "(11) 8765-4321", Format("1187654321"))
	assert.Equal(t, "(11) 98765-4321", Format("11987654321"))
	assert.Equal(t, "123", Format("123"))
	assert.Equal(t, "", Format(""))
}
