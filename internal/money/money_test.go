package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/crylonblue/blitzrechnung/internal/money"
)

func TestFromInt(t *testing.T) {
	d := money.FromInt(100)
	assert.True(t, d.Equal(dec.NewFromInt(100)))
}

func TestMul(t *testing.T) {
	a := dec.NewFromInt(100)
	b := dec.NewFromFloat(0.15)
	result := money.Mul(a, b)
	assert.True(t, result.Equal(dec.NewFromInt(15)))
}

func TestMul_RoundsToCents(t *testing.T) {
	a := dec.RequireFromString("33.33")
	b := dec.NewFromInt(3)
	result := money.Mul(a, b)
	assert.True(t, result.Equal(dec.RequireFromString("99.99")))
}

func TestCalculateVAT(t *testing.T) {
	tests := []struct {
		name     string
		net      string
		rate     int64
		expected string
	}{
		{"19% of 100.00", "100.00", 19, "19.00"},
		{"7% of 100.00", "100.00", 7, "7.00"},
		{"0% of 100.00", "100.00", 0, "0"},
		{"19% of 33.33", "33.33", 19, "6.33"},
		{"19% of 0.01 (rounds to nearest cent)", "0.01", 19, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := dec.RequireFromString(tt.net)
			result := money.CalculateVAT(net, dec.NewFromInt(tt.rate))
			expected := dec.RequireFromString(tt.expected)

			assert.True(t, result.Equal(expected),
				"net=%s, rate=%d%%: got %s, want %s",
				tt.net, tt.rate, result.String(), tt.expected)
		})
	}
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(100),
		dec.NewFromInt(200),
		dec.NewFromInt(300),
	}
	result := money.Sum(values)
	assert.True(t, result.Equal(dec.NewFromInt(600)))
}

func TestSum_Empty(t *testing.T) {
	result := money.Sum([]dec.Decimal{})
	assert.True(t, result.IsZero())
}

func TestRoundEUR(t *testing.T) {
	d := dec.RequireFromString("123.456")
	result := money.RoundEUR(d)
	assert.True(t, result.Equal(dec.RequireFromString("123.46")))
}
