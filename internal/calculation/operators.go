package calculation

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
	"github.com/tn-payroll/payroll-engine/pkg/money"
)

// payBandIncrementRate is the annual increment under the 6th commission:
// 3% of pay-in-pay-band plus grade pay.
var payBandIncrementRate = decimal.NewFromFloat(0.03)

// FitIntoLevel fixes a pay amount into a matrix level: the lowest cell not
// below the amount, or the top cell when the amount exceeds the ladder.
func FitIntoLevel(pay int64, level int) (int64, error) {
	cells, ok := refdata.MatrixLevel(level)
	if !ok {
		return 0, domain.NewMappingError("level", strconv.Itoa(level))
	}
	for _, c := range cells {
		if c >= pay {
			return c, nil
		}
	}
	return cells[len(cells)-1], nil
}

// IncrementInMatrix advances pay by n cells within a matrix level. Pay that
// sits between cells first snaps to the next higher cell, which consumes one
// of the n steps. The result never moves past the top cell.
func IncrementInMatrix(pay int64, level, n int) (int64, error) {
	cells, ok := refdata.MatrixLevel(level)
	if !ok {
		return 0, domain.NewMappingError("level", strconv.Itoa(level))
	}
	idx := -1
	for i, c := range cells {
		if c == pay {
			idx = i + n
			break
		}
		if c > pay {
			idx = i + n - 1
			break
		}
	}
	if idx < 0 {
		idx = len(cells) - 1
	}
	if idx > len(cells)-1 {
		idx = len(cells) - 1
	}
	return cells[idx], nil
}

// IncrementInPayBand applies n 6th-commission increments: each step adds 3%
// of (PIPB + grade pay), rounded to whole rupees, with PIPB clamped at the
// band maximum for the grade pay when one is defined.
func IncrementInPayBand(pipb, gradePay int64, n int) (newPIPB, newBasic int64) {
	band, hasBand := refdata.PayBands[gradePay]
	for i := 0; i < n; i++ {
		inc := money.MulRound(pipb+gradePay, payBandIncrementRate)
		pipb += inc
		if hasBand && band.Max > 0 && pipb > band.Max {
			pipb = band.Max
		}
	}
	return pipb, pipb + gradePay
}

// LookupDARate returns the dearness allowance rate in force for a commission
// on a date: the latest sanction not after the date whose series matches.
// Commissions before the 6th share one series.
func LookupDARate(c domain.Commission, date time.Time) decimal.Decimal {
	rate := decimal.Zero
	for _, entry := range refdata.DARates {
		if entry.EffectiveDate.After(date) {
			break
		}
		sharedPre2006 := c <= domain.FifthPC && entry.Commission <= domain.FifthPC
		if sharedPre2006 || entry.Commission == c {
			rate = entry.Rate
		}
	}
	return rate
}

// LookupHRA returns the flat house rent allowance for a basic pay, date and
// city class: pick the era table in force, find the slab bracketing the pay,
// read the city grade's amount, falling back to the unclassified rate.
func LookupHRA(basicPay int64, date time.Time, class domain.CityClass) int64 {
	var table *refdata.HRATable
	for i := range refdata.HRATables {
		if refdata.HRATables[i].From.After(date) {
			break
		}
		table = &refdata.HRATables[i]
	}
	if table == nil {
		return 0
	}
	grade := refdata.CityGradeFor(class)
	for _, s := range table.Slabs {
		if basicPay < s.MinPay {
			continue
		}
		if s.MaxPay > 0 && basicPay > s.MaxPay {
			continue
		}
		if amount, ok := s.Rates[grade]; ok {
			return amount
		}
		return s.Rates[refdata.CityGradeUnclassified]
	}
	return 0
}

// LookupCCA returns the city compensatory allowance. The 7th commission
// merged CCA into pay, so it is zero from that era on.
func LookupCCA(c domain.Commission, class domain.CityClass) int64 {
	if c >= domain.SeventhPC {
		return 0
	}
	return refdata.CCARates[class]
}
