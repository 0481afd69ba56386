package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int (whole-euro amounts and rates)
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Mul multiplies two decimals, rounds to cents
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// CalculateVAT computes VAT amount: net * (rate/100), rounded to cents
func CalculateVAT(net decimal.Decimal, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.IsZero() {
		return Zero
	}
	hundred := decimal.NewFromInt(100)
	return net.Mul(ratePercent).Div(hundred).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// RoundEUR rounds to cents (EUR has two decimal places)
func RoundEUR(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
