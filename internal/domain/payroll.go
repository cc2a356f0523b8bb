package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deduction is one named recovery from the month's gross pay.
type Deduction struct {
	Name   string `json:"name" yaml:"name"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// PayrollPeriod is one month's pay slip.
type PayrollPeriod struct {
	Year      int        `json:"year" yaml:"year"`
	Month     time.Month `json:"month" yaml:"month"`
	MonthName string     `json:"month_name" yaml:"month_name"`

	Commission   Commission `json:"commission" yaml:"commission"`
	ScaleID      string     `json:"scale_id,omitempty" yaml:"scale_id,omitempty"`
	Level        int        `json:"level,omitempty" yaml:"level,omitempty"`
	PayInPayBand int64      `json:"pay_in_pay_band,omitempty" yaml:"pay_in_pay_band,omitempty"`
	GradePay     int64      `json:"grade_pay,omitempty" yaml:"grade_pay,omitempty"`

	BasicPay         int64           `json:"basic_pay" yaml:"basic_pay"`
	DARate           decimal.Decimal `json:"da_rate" yaml:"da_rate"`
	DAAmount         int64           `json:"da_amount" yaml:"da_amount"`
	HRA              int64           `json:"hra" yaml:"hra"`
	CCA              int64           `json:"cca" yaml:"cca"`
	MedicalAllowance int64           `json:"medical_allowance" yaml:"medical_allowance"`
	GrossPay         int64           `json:"gross_pay" yaml:"gross_pay"`

	Deductions      []Deduction `json:"deductions,omitempty" yaml:"deductions,omitempty"`
	TotalDeductions int64       `json:"total_deductions" yaml:"total_deductions"`
	NetPay          int64       `json:"net_pay" yaml:"net_pay"`

	Remarks []string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// YearlyCalculation groups the periods of one calendar year.
type YearlyCalculation struct {
	Year    int             `json:"year" yaml:"year"`
	Periods []PayrollPeriod `json:"periods" yaml:"periods"`
}

// FixationSnapshot records the arithmetic of one commission transition.
type FixationSnapshot struct {
	Commission        Commission `json:"commission" yaml:"commission"`
	EffectiveDate     string     `json:"effective_date" yaml:"effective_date"`
	PreRevisedPay     int64      `json:"pre_revised_pay" yaml:"pre_revised_pay"`
	Emoluments        int64      `json:"emoluments" yaml:"emoluments"`
	InitialRevisedPay int64      `json:"initial_revised_pay" yaml:"initial_revised_pay"`
	ScaleID           string     `json:"scale_id,omitempty" yaml:"scale_id,omitempty"`
	PayInPayBand      int64      `json:"pay_in_pay_band,omitempty" yaml:"pay_in_pay_band,omitempty"`
	GradePay          int64      `json:"grade_pay,omitempty" yaml:"grade_pay,omitempty"`
	Level             int        `json:"level,omitempty" yaml:"level,omitempty"`
	Remark            string     `json:"remark,omitempty" yaml:"remark,omitempty"`
}

// AppliedRevision is an audit entry for a scale or structure change.
type AppliedRevision struct {
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	FromScale   string `json:"from_scale,omitempty" yaml:"from_scale,omitempty"`
	ToScale     string `json:"to_scale,omitempty" yaml:"to_scale,omitempty"`
}

// IncrementAnalysis counts increments granted, by category.
type IncrementAnalysis struct {
	Regular        int `json:"regular" yaml:"regular"`
	SelectionGrade int `json:"selection_grade" yaml:"selection_grade"`
	SpecialGrade   int `json:"special_grade" yaml:"special_grade"`
	Promotion      int `json:"promotion" yaml:"promotion"`
	AccountTest    int `json:"account_test" yaml:"account_test"`
	Total          int `json:"total" yaml:"total"`
}

// EmployeeDetails is the formatted header block of the result.
type EmployeeDetails struct {
	Name                 string `json:"name" yaml:"name"`
	EmployeeID           string `json:"employee_id,omitempty" yaml:"employee_id,omitempty"`
	Designation          string `json:"designation,omitempty" yaml:"designation,omitempty"`
	OfficeName           string `json:"office_name,omitempty" yaml:"office_name,omitempty"`
	JoiningPost          string `json:"joining_post" yaml:"joining_post"`
	DateOfBirth          string `json:"date_of_birth" yaml:"date_of_birth"`
	DateOfJoiningService string `json:"date_of_joining_service" yaml:"date_of_joining_service"`
	DateOfJoiningOffice  string `json:"date_of_joining_office,omitempty" yaml:"date_of_joining_office,omitempty"`
	DateOfRelief         string `json:"date_of_relief,omitempty" yaml:"date_of_relief,omitempty"`
	RetirementDate       string `json:"retirement_date" yaml:"retirement_date"`
	CityClass            string `json:"city_class" yaml:"city_class"`
}

// PayrollResult is the full output of one simulation.
type PayrollResult struct {
	CaseID          uuid.UUID       `json:"case_id,omitempty" yaml:"case_id,omitempty"`
	EmployeeDetails EmployeeDetails `json:"employee_details" yaml:"employee_details"`

	Fixation4thPC *FixationSnapshot `json:"fixation_4th_pc,omitempty" yaml:"fixation_4th_pc,omitempty"`
	Fixation5thPC *FixationSnapshot `json:"fixation_5th_pc,omitempty" yaml:"fixation_5th_pc,omitempty"`
	Fixation6thPC *FixationSnapshot `json:"fixation_6th_pc,omitempty" yaml:"fixation_6th_pc,omitempty"`
	Fixation7thPC *FixationSnapshot `json:"fixation_7th_pc,omitempty" yaml:"fixation_7th_pc,omitempty"`

	YearlyCalculations []YearlyCalculation `json:"yearly_calculations" yaml:"yearly_calculations"`
	AppliedRevisions   []AppliedRevision   `json:"applied_revisions,omitempty" yaml:"applied_revisions,omitempty"`
	IncrementAnalysis  IncrementAnalysis   `json:"increment_analysis" yaml:"increment_analysis"`
}

// Periods flattens the yearly groups back into one chronological slice.
func (r *PayrollResult) Periods() []PayrollPeriod {
	var out []PayrollPeriod
	for _, y := range r.YearlyCalculations {
		out = append(out, y.Periods...)
	}
	return out
}
