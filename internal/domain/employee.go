package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

// Commission identifies a Tamil Nadu state pay commission era.
type Commission int

const (
	ThirdPC   Commission = 3
	FourthPC  Commission = 4
	FifthPC   Commission = 5
	SixthPC   Commission = 6
	SeventhPC Commission = 7
)

// Commission era boundaries. A date's commission is the latest era whose
// start is on or before it.
var (
	FourthPCStart  = dateutil.Date(1986, time.January, 1)
	FifthPCStart   = dateutil.Date(1996, time.January, 1)
	SixthPCStart   = dateutil.Date(2006, time.January, 1)
	SeventhPCStart = dateutil.Date(2016, time.January, 1)
)

// CommissionForDate returns the pay commission in force on a given date.
func CommissionForDate(date time.Time) Commission {
	switch {
	case !date.Before(SeventhPCStart):
		return SeventhPC
	case !date.Before(SixthPCStart):
		return SixthPC
	case !date.Before(FifthPCStart):
		return FifthPC
	case !date.Before(FourthPCStart):
		return FourthPC
	default:
		return ThirdPC
	}
}

// CityClass is the classification of the employee's place of posting.
type CityClass string

const (
	CityClassA CityClass = "A"
	CityClassB CityClass = "B"
	CityClassC CityClass = "C"
)

// PostRef names the post held at joining: either a catalogued post id or a
// free-text name for posts outside the catalogue.
type PostRef struct {
	ID         string `yaml:"id,omitempty" json:"id,omitempty"`
	CustomName string `yaml:"custom_name,omitempty" json:"custom_name,omitempty"`
}

// Name returns whichever of the two identifiers is set.
func (p PostRef) Name() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return p.ID
}

// JoiningPay describes pay at the date of joining in the representation of
// the commission then in force. Exactly one representation applies:
// ScaleID+BasicPay before 2006, ScaleID+PayInPayBand for the 6th commission
// (grade pay comes from the scale entry), Level for the 7th (a BasicPay given
// with it is fitted into the level; without one pay starts at the first cell).
type JoiningPay struct {
	ScaleID      string `yaml:"scale_id,omitempty" json:"scale_id,omitempty"`
	BasicPay     int64  `yaml:"basic_pay,omitempty" json:"basic_pay,omitempty"`
	PayInPayBand int64  `yaml:"pay_in_pay_band,omitempty" json:"pay_in_pay_band,omitempty"`
	Level        int    `yaml:"level,omitempty" json:"level,omitempty"`
}

// GradeAward is a selection-grade or special-grade award. ApplyFixation true
// grants the two-increment fixation benefit; false grants a single increment.
type GradeAward struct {
	EffectiveDate time.Time `yaml:"effective_date" json:"effective_date"`
	ApplyFixation bool      `yaml:"apply_fixation" json:"apply_fixation"`
}

// Promotion moves the employee to a new post. GradePay applies under the 6th
// commission, Level under the 7th; under earlier commissions only the notional
// increment is applied.
type Promotion struct {
	Date     time.Time `yaml:"date" json:"date"`
	PostName string    `yaml:"post_name" json:"post_name"`
	GradePay int64     `yaml:"grade_pay,omitempty" json:"grade_pay,omitempty"`
	Level    int       `yaml:"level,omitempty" json:"level,omitempty"`
}

// IncrementScheduleChange moves the annual increment month from its effective
// date onward. Month must be January, April, July or October.
type IncrementScheduleChange struct {
	EffectiveDate time.Time  `yaml:"effective_date" json:"effective_date"`
	Month         time.Month `yaml:"month" json:"month"`
}

// ServiceBreak is a period out of service. Its length in calendar days
// postpones increment accrual.
type ServiceBreak struct {
	Start time.Time `yaml:"start" json:"start"`
	End   time.Time `yaml:"end" json:"end"`
}

// Days returns the break length in whole calendar days.
func (b ServiceBreak) Days() int {
	return dateutil.DaysBetween(b.Start, b.End)
}

// AccountTestEvent records a departmental account test pass. It earns one
// extra increment on the next scheduled increment date.
type AccountTestEvent struct {
	PassDate    time.Time `yaml:"pass_date" json:"pass_date"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// ProbationType selects the probation period length.
type ProbationType string

const (
	ProbationOneYear  ProbationType = "1Y"
	ProbationTwoYears ProbationType = "2Y"
	ProbationCustom   ProbationType = "custom"
)

// TestStatus is the state of a required departmental test.
type TestStatus string

const (
	TestPassed   TestStatus = "passed"
	TestPending  TestStatus = "pending"
	TestExempted TestStatus = "exempted"
)

// ProbationSettings configures probation-linked increment withholding.
type ProbationSettings struct {
	Type         ProbationType `yaml:"type" json:"type"`
	CustomMonths int           `yaml:"custom_months,omitempty" json:"custom_months,omitempty"`
	StartDate    time.Time     `yaml:"start_date" json:"start_date"`
	TestRequired bool          `yaml:"test_required" json:"test_required"`
	TestType     string        `yaml:"test_type,omitempty" json:"test_type,omitempty"`
	TestName     string        `yaml:"test_name,omitempty" json:"test_name,omitempty"`
	TestStatus   TestStatus    `yaml:"test_status,omitempty" json:"test_status,omitempty"`
	TestPassDate *time.Time    `yaml:"test_pass_date,omitempty" json:"test_pass_date,omitempty"`
}

// EffectiveYears normalizes the probation length: custom periods up to 18
// months count as one-year probation, longer ones as two-year.
func (p ProbationSettings) EffectiveYears() int {
	switch p.Type {
	case ProbationOneYear:
		return 1
	case ProbationTwoYears:
		return 2
	case ProbationCustom:
		if p.CustomMonths <= 18 {
			return 1
		}
		return 2
	default:
		return 2
	}
}

// FixedComponents are the flat monthly allowances and deductions.
type FixedComponents struct {
	MedicalAllowance int64  `yaml:"medical_allowance" json:"medical_allowance"`
	PensionScheme    string `yaml:"pension_scheme,omitempty" json:"pension_scheme,omitempty"` // "CPS" or "GPF"
	PensionRate      Rate   `yaml:"pension_rate" json:"pension_rate"`                         // percent of basic+DA
	ProfessionalTax  int64  `yaml:"professional_tax" json:"professional_tax"`
	GIS              int64  `yaml:"gis" json:"gis"`
}

// LPCAdvance is an advance recovered through the pay bill in its month.
type LPCAdvance struct {
	Date        time.Time `yaml:"date" json:"date"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Amount      int64     `yaml:"amount" json:"amount"`
}

// EmployeeInput is the complete career record the engine simulates from.
// It is immutable: the engine never writes to it.
type EmployeeInput struct {
	CaseID        uuid.UUID `yaml:"case_id,omitempty" json:"case_id,omitempty"`
	Name          string    `yaml:"name" json:"name" validate:"required"`
	EmployeeID    string    `yaml:"employee_id,omitempty" json:"employee_id,omitempty"`
	Designation   string    `yaml:"designation,omitempty" json:"designation,omitempty"`
	OfficeName    string    `yaml:"office_name,omitempty" json:"office_name,omitempty"`
	DateOfBirth   time.Time `yaml:"date_of_birth" json:"date_of_birth" validate:"required"`
	RetirementAge int       `yaml:"retirement_age" json:"retirement_age" validate:"oneof=58 60"`

	DateOfJoiningService time.Time  `yaml:"date_of_joining_service" json:"date_of_joining_service" validate:"required"`
	DateOfJoiningOffice  time.Time  `yaml:"date_of_joining_office,omitempty" json:"date_of_joining_office,omitempty"`
	DateOfRelief         *time.Time `yaml:"date_of_relief,omitempty" json:"date_of_relief,omitempty"`

	JoiningPost PostRef    `yaml:"joining_post" json:"joining_post"`
	JoiningPay  JoiningPay `yaml:"joining_pay" json:"joining_pay"`

	SelectionGrade *GradeAward `yaml:"selection_grade,omitempty" json:"selection_grade,omitempty"`
	SpecialGrade   *GradeAward `yaml:"special_grade,omitempty" json:"special_grade,omitempty"`

	Promotions               []Promotion               `yaml:"promotions,omitempty" json:"promotions,omitempty"`
	IncrementScheduleChanges []IncrementScheduleChange `yaml:"increment_schedule_changes,omitempty" json:"increment_schedule_changes,omitempty"`
	ServiceBreaks            []ServiceBreak            `yaml:"service_breaks,omitempty" json:"service_breaks,omitempty"`
	AccountTests             []AccountTestEvent        `yaml:"account_tests,omitempty" json:"account_tests,omitempty"`
	LPCAdvances              []LPCAdvance              `yaml:"lpc_advances,omitempty" json:"lpc_advances,omitempty"`

	Allowances FixedComponents   `yaml:"allowances" json:"allowances"`
	Probation  ProbationSettings `yaml:"probation" json:"probation"`

	CityClass CityClass `yaml:"city_class" json:"city_class" validate:"oneof=A B C"`

	DAOverride *Rate `yaml:"da_override,omitempty" json:"da_override,omitempty"`

	// IncrementEligibilityMonths is the qualifying service before the first
	// increment accrues. Zero means the default of 6.
	IncrementEligibilityMonths int `yaml:"increment_eligibility_months,omitempty" json:"increment_eligibility_months,omitempty"`

	CalculationStart time.Time `yaml:"calculation_start" json:"calculation_start" validate:"required"`
	CalculationEnd   time.Time `yaml:"calculation_end" json:"calculation_end" validate:"required"`
}

// JoiningCommission returns the commission in force at the date of joining.
func (e *EmployeeInput) JoiningCommission() Commission {
	return CommissionForDate(e.DateOfJoiningService)
}

// EffectiveEndDate clips the requested calculation end at the date of relief.
func (e *EmployeeInput) EffectiveEndDate() time.Time {
	if e.DateOfRelief != nil && e.DateOfRelief.Before(e.CalculationEnd) {
		return *e.DateOfRelief
	}
	return e.CalculationEnd
}

// TotalBreakDays sums every break in service, in calendar days.
func (e *EmployeeInput) TotalBreakDays() int {
	total := 0
	for _, b := range e.ServiceBreaks {
		total += b.Days()
	}
	return total
}

// RetirementDate is the last day of the month in which the employee reaches
// the retirement age. An unset age defaults to 58.
func (e *EmployeeInput) RetirementDate() time.Time {
	age := e.RetirementAge
	if age == 0 {
		age = 58
	}
	return dateutil.LastOfMonth(dateutil.AddYears(e.DateOfBirth, age))
}
