package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Amount
	}{
		{"comma decimal", "12,50", 1250},
		{"dot decimal", "12.50", 1250},
		{"integer", "10", 1000},
		{"surrounding spaces", " 7 ", 700},
		{"single decimal place", "0,1", 10},
		{"negative comma", "-3,25", -325},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"garbage", "abc", 0},
		{"double comma", "1,2,3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestFromFloatRounds(t *testing.T) {
	assert.Equal(t, Amount(1), FromFloat(0.005))
	assert.Equal(t, Amount(1250), FromFloat(12.499999999999))
	assert.Equal(t, Amount(-325), FromFloat(-3.25))
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.50", Amount(1250).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "0.00", Amount(0).String())
	assert.Equal(t, "-3.25", Amount(-325).String())
}

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 55.00", Amount(5500).BRL())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Amount(1250))
	assert.NoError(t, err)
	assert.Equal(t, "12.50", string(data))

	var a Amount
	assert.NoError(t, json.Unmarshal([]byte("12.5"), &a))
	assert.Equal(t, Amount(1250), a)

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &a))
}
