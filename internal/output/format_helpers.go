package output

import (
	"math"
	"strconv"

	money "github.com/rpgo/enoughcalc/pkg/decimal"
)

// FormatCurrency formats whole dollars with thousands separators.
// Undefined statistics (NaN) render as "n/a".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) {
		return "n/a"
	}
	return money.NewMoney(amount).Format()
}

// FormatCompact formats large amounts as $1.2M / $350.0K.
func FormatCompact(amount float64) string {
	if math.IsNaN(amount) {
		return "n/a"
	}
	return money.NewMoney(amount).FormatCompact()
}

// FormatPercentage formats a fractional rate (0.043) as "4.3%".
func FormatPercentage(rate float64) string {
	if math.IsNaN(rate) {
		return "n/a"
	}
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}

// cents renders an amount with two decimals for machine-readable exports.
func cents(amount float64) string {
	if math.IsNaN(amount) {
		return ""
	}
	return money.NewMoney(amount).Round().String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func rateString(r float64) string { return strconv.FormatFloat(r, 'f', 6, 64) }
