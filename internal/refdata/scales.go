package refdata

import (
	"github.com/tn-payroll/payroll-engine/internal/domain"
)

// PayScale is one catalogued scale. Pre-2006 entries carry a scale string;
// 6th-commission entries carry a pay band and grade pay instead.
type PayScale struct {
	ID         string
	Commission domain.Commission
	Post       string
	Scale      string
	Band       string
	GradePay   int64
}

// PayBand is a 6th-commission running pay band.
type PayBand struct {
	Name string
	Min  int64
	Max  int64
}

// Scales is the catalogue of Tamil Nadu state pay scales across the 3rd to
// 6th commissions, keyed by identifier. Identifiers share a post ordinal
// across commissions (3.08 revises to 4.08 and so on); the cross-commission
// mapping itself is carried in the explicit maps below, never inferred from
// the identifier text.
var Scales = map[string]PayScale{
	// 3rd commission (1978 scales, in force for this engine from 1980)
	"3.01": {ID: "3.01", Commission: domain.ThirdPC, Post: "Office Assistant", Scale: "350-10-450-15-600"},
	"3.04": {ID: "3.04", Commission: domain.ThirdPC, Post: "Record Clerk", Scale: "400-12-520-15-700"},
	"3.08": {ID: "3.08", Commission: domain.ThirdPC, Post: "Junior Assistant", Scale: "430-15-550-20-750"},
	"3.12": {ID: "3.12", Commission: domain.ThirdPC, Post: "Assistant", Scale: "550-25-750-30-900"},
	"3.16": {ID: "3.16", Commission: domain.ThirdPC, Post: "Superintendent", Scale: "700-30-900-40-1100"},
	"3.20": {ID: "3.20", Commission: domain.ThirdPC, Post: "Assistant Director", Scale: "900-40-1100-50-1400"},

	// 4th commission (1986)
	"4.01": {ID: "4.01", Commission: domain.FourthPC, Post: "Office Assistant", Scale: "750-12-870-15-1050"},
	"4.04": {ID: "4.04", Commission: domain.FourthPC, Post: "Record Clerk", Scale: "800-15-1010-20-1150"},
	"4.08": {ID: "4.08", Commission: domain.FourthPC, Post: "Junior Assistant", Scale: "975-25-1150-30-1660"},
	"4.12": {ID: "4.12", Commission: domain.FourthPC, Post: "Assistant", Scale: "1200-30-1440-40-1800"},
	"4.16": {ID: "4.16", Commission: domain.FourthPC, Post: "Superintendent", Scale: "1640-60-2600-75-2900"},
	"4.20": {ID: "4.20", Commission: domain.FourthPC, Post: "Assistant Director", Scale: "2200-75-2800-100-4000"},

	// 5th commission (1996)
	"5.01": {ID: "5.01", Commission: domain.FifthPC, Post: "Office Assistant", Scale: "2550-55-2660-60-3200"},
	"5.04": {ID: "5.04", Commission: domain.FifthPC, Post: "Record Clerk", Scale: "2650-65-3300-70-4000"},
	"5.08": {ID: "5.08", Commission: domain.FifthPC, Post: "Junior Assistant", Scale: "3200-85-4900"},
	"5.12": {ID: "5.12", Commission: domain.FifthPC, Post: "Assistant", Scale: "4000-100-6000"},
	"5.16": {ID: "5.16", Commission: domain.FifthPC, Post: "Superintendent", Scale: "5500-175-9000"},
	"5.20": {ID: "5.20", Commission: domain.FifthPC, Post: "Assistant Director", Scale: "8000-275-13500"},

	// 5th commission selection / special grade scales
	"5.01SG": {ID: "5.01SG", Commission: domain.FifthPC, Post: "Office Assistant (Selection Grade)", Scale: "2610-60-3150-65-3540"},
	"5.01SP": {ID: "5.01SP", Commission: domain.FifthPC, Post: "Office Assistant (Special Grade)", Scale: "2700-65-3800"},
	"5.08SG": {ID: "5.08SG", Commission: domain.FifthPC, Post: "Junior Assistant (Selection Grade)", Scale: "3625-85-4900"},
	"5.08SP": {ID: "5.08SP", Commission: domain.FifthPC, Post: "Junior Assistant (Special Grade)", Scale: "4000-100-6000"},
	"5.12SG": {ID: "5.12SG", Commission: domain.FifthPC, Post: "Assistant (Selection Grade)", Scale: "4300-100-6000"},
	"5.12SP": {ID: "5.12SP", Commission: domain.FifthPC, Post: "Assistant (Special Grade)", Scale: "4500-100-7000"},

	// 6th commission (2006): pay band plus grade pay
	"6.01": {ID: "6.01", Commission: domain.SixthPC, Post: "Office Assistant", Band: "PB-1A", GradePay: 1300},
	"6.04": {ID: "6.04", Commission: domain.SixthPC, Post: "Record Clerk", Band: "PB-1A", GradePay: 1650},
	"6.08": {ID: "6.08", Commission: domain.SixthPC, Post: "Junior Assistant", Band: "PB-1", GradePay: 2400},
	"6.12": {ID: "6.12", Commission: domain.SixthPC, Post: "Assistant", Band: "PB-2", GradePay: 4200},
	"6.16": {ID: "6.16", Commission: domain.SixthPC, Post: "Superintendent", Band: "PB-2", GradePay: 4600},
	"6.20": {ID: "6.20", Commission: domain.SixthPC, Post: "Assistant Director", Band: "PB-3", GradePay: 5400},
}

// PayBands gives the running band for each grade pay.
var PayBands = map[int64]PayBand{
	1300: {Name: "PB-1A", Min: 4800, Max: 10000},
	1400: {Name: "PB-1A", Min: 4800, Max: 10000},
	1650: {Name: "PB-1A", Min: 4800, Max: 10000},
	1800: {Name: "PB-1", Min: 5200, Max: 20200},
	1900: {Name: "PB-1", Min: 5200, Max: 20200},
	2000: {Name: "PB-1", Min: 5200, Max: 20200},
	2400: {Name: "PB-1", Min: 5200, Max: 20200},
	4200: {Name: "PB-2", Min: 9300, Max: 34800},
	4400: {Name: "PB-2", Min: 9300, Max: 34800},
	4600: {Name: "PB-2", Min: 9300, Max: 34800},
	4800: {Name: "PB-2", Min: 9300, Max: 34800},
	5400: {Name: "PB-3", Min: 15600, Max: 39100},
	6600: {Name: "PB-3", Min: 15600, Max: 39100},
	7600: {Name: "PB-3", Min: 15600, Max: 39100},
}

// Explicit cross-commission scale maps. A missing key is a fatal mapping
// failure at fixation time.
var (
	ScaleMap3to4 = map[string]string{
		"3.01": "4.01",
		"3.04": "4.04",
		"3.08": "4.08",
		"3.12": "4.12",
		"3.16": "4.16",
		"3.20": "4.20",
	}
	ScaleMap4to5 = map[string]string{
		"4.01": "5.01",
		"4.04": "5.04",
		"4.08": "5.08",
		"4.12": "5.12",
		"4.16": "5.16",
		"4.20": "5.20",
	}
	ScaleMap5to6 = map[string]string{
		"5.01":   "6.01",
		"5.04":   "6.04",
		"5.08":   "6.08",
		"5.08SG": "6.08",
		"5.08SP": "6.12",
		"5.12":   "6.12",
		"5.12SG": "6.12",
		"5.12SP": "6.16",
		"5.01SG": "6.01",
		"5.01SP": "6.04",
		"5.16":   "6.16",
		"5.20":   "6.20",
	}
)

// Selection and special grade scale maps for the 5th commission. The key is
// the ordinary scale held; grades under other commissions are plain
// increments and need no map.
var (
	SelectionGradeScale5 = map[string]string{
		"5.01": "5.01SG",
		"5.08": "5.08SG",
		"5.12": "5.12SG",
	}
	SpecialGradeScale5 = map[string]string{
		"5.01": "5.01SP",
		"5.08": "5.08SP",
		"5.12": "5.12SP",
	}
)

// GradePayToLevel maps a 6th-commission grade pay to its 7th-commission
// matrix level.
var GradePayToLevel = map[int64]int{
	1300: 1,
	1400: 2,
	1650: 3,
	1800: 4,
	1900: 5,
	2000: 6,
	2400: 7,
	4200: 8,
	4400: 9,
	4600: 10,
	4800: 11,
	5400: 12,
	6600: 13,
	7600: 14,
}

// ScaleByID looks a scale up, reporting whether it exists.
func ScaleByID(id string) (PayScale, bool) {
	s, ok := Scales[id]
	return s, ok
}

// ScaleByGradePay returns the 6th-commission catalogue entry carrying the
// given grade pay.
func ScaleByGradePay(gp int64) (PayScale, bool) {
	for _, s := range Scales {
		if s.Commission == domain.SixthPC && s.GradePay == gp {
			return s, true
		}
	}
	return PayScale{}, false
}
