// Package decimal wraps shopspring/decimal with the arithmetic helpers the
// invoice engine needs. All rounding in this package is half away from zero:
// a midpoint like 0.005 rounds to 0.01 and -0.005 rounds to -0.01.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// Round rounds d to scale fractional digits, half away from zero. The input
// is not modified; rounding an already rounded value is a no-op.
func Round(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.Round(scale)
}

// Percent computes d * percentage / 100 without rounding.
func Percent(d decimal.Decimal, percentage decimal.Decimal) decimal.Decimal {
	return d.Mul(percentage).Div(hundred)
}

// AddPercent computes d * (1 + percentage/100) without rounding.
func AddPercent(d decimal.Decimal, percentage decimal.Decimal) decimal.Decimal {
	return d.Add(Percent(d, percentage))
}

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}
