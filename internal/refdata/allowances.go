package refdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

// DARate is one dearness allowance sanction. Entries with Commission up to
// the 5th form the shared pre-2006 series; 6th and 7th series are separate
// because each revision resets DA to zero against the revised basic.
type DARate struct {
	EffectiveDate time.Time
	Commission    domain.Commission
	Rate          decimal.Decimal
}

func da(date string, c domain.Commission, rate int64) DARate {
	return DARate{EffectiveDate: dateutil.MustParseUTC(date), Commission: c, Rate: decimal.NewFromInt(rate)}
}

// DARates in chronological order.
var DARates = []DARate{
	da("1980-01-01", domain.ThirdPC, 44),
	da("1982-01-01", domain.ThirdPC, 56),
	da("1984-01-01", domain.ThirdPC, 68),
	da("1986-01-01", domain.FourthPC, 0),
	da("1988-01-01", domain.FourthPC, 9),
	da("1990-01-01", domain.FourthPC, 17),
	da("1992-01-01", domain.FourthPC, 32),
	da("1994-01-01", domain.FourthPC, 56),
	da("1996-01-01", domain.FifthPC, 0),
	da("1997-07-01", domain.FifthPC, 13),
	da("1999-01-01", domain.FifthPC, 22),
	da("2001-01-01", domain.FifthPC, 41),
	da("2003-01-01", domain.FifthPC, 55),
	da("2005-01-01", domain.FifthPC, 71),
	da("2006-01-01", domain.SixthPC, 0),
	da("2006-07-01", domain.SixthPC, 2),
	da("2007-01-01", domain.SixthPC, 6),
	da("2007-07-01", domain.SixthPC, 9),
	da("2008-01-01", domain.SixthPC, 12),
	da("2008-07-01", domain.SixthPC, 16),
	da("2009-01-01", domain.SixthPC, 22),
	da("2009-07-01", domain.SixthPC, 27),
	da("2010-01-01", domain.SixthPC, 35),
	da("2010-07-01", domain.SixthPC, 45),
	da("2011-01-01", domain.SixthPC, 51),
	da("2011-07-01", domain.SixthPC, 58),
	da("2012-01-01", domain.SixthPC, 65),
	da("2012-07-01", domain.SixthPC, 72),
	da("2013-01-01", domain.SixthPC, 80),
	da("2013-07-01", domain.SixthPC, 90),
	da("2014-01-01", domain.SixthPC, 100),
	da("2014-07-01", domain.SixthPC, 107),
	da("2015-01-01", domain.SixthPC, 113),
	da("2015-07-01", domain.SixthPC, 119),
	da("2016-01-01", domain.SeventhPC, 0),
	da("2016-07-01", domain.SeventhPC, 2),
	da("2017-01-01", domain.SeventhPC, 4),
	da("2017-07-01", domain.SeventhPC, 5),
	da("2018-01-01", domain.SeventhPC, 7),
	da("2018-07-01", domain.SeventhPC, 9),
	da("2019-01-01", domain.SeventhPC, 12),
	da("2019-07-01", domain.SeventhPC, 17),
	da("2021-07-01", domain.SeventhPC, 28),
	da("2022-01-01", domain.SeventhPC, 31),
	da("2022-07-01", domain.SeventhPC, 34),
	da("2023-01-01", domain.SeventhPC, 38),
	da("2023-07-01", domain.SeventhPC, 42),
	da("2024-01-01", domain.SeventhPC, 46),
	da("2024-07-01", domain.SeventhPC, 50),
	da("2025-01-01", domain.SeventhPC, 53),
}

// CityGrade is the HRA classification of the place of posting.
type CityGrade string

const (
	CityGradeIA           CityGrade = "Grade I(a)"
	CityGradeIB           CityGrade = "Grade I(b)"
	CityGradeII           CityGrade = "Grade II"
	CityGradeUnclassified CityGrade = "Unclassified"
)

// CityGradeFor maps the input's city class onto the HRA grade.
func CityGradeFor(class domain.CityClass) CityGrade {
	switch class {
	case domain.CityClassA:
		return CityGradeIA
	case domain.CityClassB:
		return CityGradeIB
	case domain.CityClassC:
		return CityGradeII
	default:
		return CityGradeUnclassified
	}
}

// HRASlab is one pay bracket of an HRA table. MaxPay zero means unbounded.
type HRASlab struct {
	MinPay int64
	MaxPay int64
	Rates  map[CityGrade]int64
}

// HRATable is the slab table of one era.
type HRATable struct {
	From  time.Time
	Slabs []HRASlab
}

func slab(min, max, ia, ib, ii, un int64) HRASlab {
	return HRASlab{MinPay: min, MaxPay: max, Rates: map[CityGrade]int64{
		CityGradeIA: ia, CityGradeIB: ib, CityGradeII: ii, CityGradeUnclassified: un,
	}}
}

// HRATables in era order. The table in force on a date is the latest whose
// From is on or before it; era starts coincide with commission switchovers
// except for the mid-6th revision of June 2009.
var HRATables = []HRATable{
	{From: dateutil.MustParseUTC("1980-01-01"), Slabs: []HRASlab{
		slab(0, 299, 30, 25, 15, 10),
		slab(300, 599, 45, 35, 25, 15),
		slab(600, 999, 75, 55, 40, 25),
		slab(1000, 0, 100, 75, 50, 30),
	}},
	{From: dateutil.MustParseUTC("1986-01-01"), Slabs: []HRASlab{
		slab(0, 749, 50, 40, 25, 15),
		slab(750, 1099, 75, 60, 40, 25),
		slab(1100, 1599, 120, 90, 60, 40),
		slab(1600, 0, 160, 120, 80, 50),
	}},
	{From: dateutil.MustParseUTC("1996-01-01"), Slabs: []HRASlab{
		slab(0, 2999, 200, 150, 100, 60),
		slab(3000, 4499, 300, 230, 150, 90),
		slab(4500, 5999, 400, 300, 200, 120),
		slab(6000, 7999, 530, 400, 260, 160),
		slab(8000, 0, 700, 530, 350, 210),
	}},
	{From: dateutil.MustParseUTC("2006-01-01"), Slabs: []HRASlab{
		slab(0, 4999, 400, 300, 200, 120),
		slab(5000, 6999, 550, 420, 280, 170),
		slab(7000, 8999, 750, 570, 380, 230),
		slab(9000, 11999, 1000, 750, 500, 300),
		slab(12000, 0, 1300, 980, 650, 390),
	}},
	{From: dateutil.MustParseUTC("2009-06-01"), Slabs: []HRASlab{
		slab(0, 4999, 500, 380, 250, 150),
		slab(5000, 6999, 700, 530, 350, 210),
		slab(7000, 8999, 950, 720, 480, 290),
		slab(9000, 11999, 1250, 940, 630, 380),
		slab(12000, 15999, 1600, 1200, 800, 480),
		slab(16000, 0, 2000, 1500, 1000, 600),
	}},
	{From: dateutil.MustParseUTC("2016-01-01"), Slabs: []HRASlab{
		slab(0, 16999, 1600, 1200, 800, 480),
		slab(17000, 21999, 2100, 1580, 1050, 630),
		slab(22000, 28999, 2700, 2030, 1350, 810),
		slab(29000, 36999, 3500, 2630, 1750, 1050),
		slab(37000, 46999, 4500, 3380, 2250, 1350),
		slab(47000, 0, 5800, 4350, 2900, 1740),
	}},
}

// CCARates by city class. City compensatory allowance was merged into pay at
// the 7th commission; the engine zeroes it from 2016 regardless of class.
var CCARates = map[domain.CityClass]int64{
	domain.CityClassA: 300,
	domain.CityClassB: 200,
	domain.CityClassC: 100,
}
