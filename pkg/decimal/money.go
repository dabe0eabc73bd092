package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount rounded for presentation.
// Engine math stays in float64; Money is the reporting boundary.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. NaN and infinities become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// AfterTax removes a flat effective tax rate from the amount.
func (m Money) AfterTax(rate float64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate)))}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole dollars with thousands separators, e.g. "-$1,234,567".
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(0)
	var b strings.Builder
	if m.Decimal.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var compactUnits = []struct {
	scale  decimal.Decimal
	suffix string
}{
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 3), "K"},
}

// FormatCompact renders large amounts with one decimal and a unit suffix ("$3.3M").
// Amounts below one thousand, including negatives, use Format.
func (m Money) FormatCompact() string {
	for _, u := range compactUnits {
		if m.Decimal.GreaterThanOrEqual(u.scale) {
			return "$" + m.Decimal.Div(u.scale).StringFixed(1) + u.suffix
		}
	}
	return m.Format()
}
