package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// All pay amounts in the engine are whole rupees. Fractions only appear
// transiently inside a single multiplication (DA percentage, the 3% pay-band
// increment, the fixation multipliers) and are rounded half-away-from-zero
// immediately; they are never accumulated across months.

// Round rounds a decimal to the nearest whole rupee, half away from zero.
func Round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// MulRound multiplies a rupee amount by a decimal factor and rounds the
// product to whole rupees.
func MulRound(amount int64, factor decimal.Decimal) int64 {
	return Round(decimal.NewFromInt(amount).Mul(factor))
}

// PercentOf computes rate% of a rupee amount, rounded to whole rupees.
func PercentOf(amount int64, rate decimal.Decimal) int64 {
	return Round(decimal.NewFromInt(amount).Mul(rate).Div(decimal.NewFromInt(100)))
}

// FormatINR renders a rupee amount with the rupee sign and Indian digit
// grouping (last three digits, then groups of two): 1234567 -> "₹12,34,567".
// Used only inside remark strings; structured output carries raw integers.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := decimal.NewFromInt(amount).String()

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
