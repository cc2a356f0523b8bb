package calculation

import (
	"fmt"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

// Engine computes a month-by-month salary history for one employee. It holds
// no per-run state; a single Engine may serve any number of sequential or
// concurrent calls, each of which works on its own SimulationState.
type Engine struct {
	Logger Logger
}

// NewEngine builds an engine. A nil logger falls back to the no-op logger.
func NewEngine(logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{Logger: logger}
}

// ComputePayrollHistory is the engine entry point: it validates the input,
// runs the monthly simulation from joining to the effective end, and
// assembles the grouped result. Errors are fatal; there is no partial result.
func (e *Engine) ComputePayrollHistory(in *domain.EmployeeInput) (*domain.PayrollResult, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	sim, err := newSimulation(in, e.Logger)
	if err != nil {
		return nil, err
	}
	if err := sim.run(); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	return sim.assembleResult(), nil
}

// ValidateInput enforces the engine-side input rules: presence of the three
// anchor dates, the 1980 floor, and the joining pay fields matching the
// joining era. Structural form validation belongs to the caller; these
// checks guard the simulation itself.
func ValidateInput(in *domain.EmployeeInput) error {
	if in == nil {
		return domain.NewValidationError("input", "no input provided")
	}
	if in.DateOfJoiningService.IsZero() {
		return domain.NewValidationError("date_of_joining_service", "date of joining service is required")
	}
	if in.CalculationStart.IsZero() {
		return domain.NewValidationError("calculation_start", "calculation start date is required")
	}
	if in.CalculationEnd.IsZero() {
		return domain.NewValidationError("calculation_end", "calculation end date is required")
	}
	if in.DateOfJoiningService.Before(dateutil.EarliestSupportedDate) {
		return domain.NewValidationError("date_of_joining_service",
			"dates before %s are not supported", dateutil.FormatDDMMYYYY(dateutil.EarliestSupportedDate))
	}
	if in.CalculationEnd.Before(in.CalculationStart) {
		return domain.NewValidationError("calculation_end", "calculation end precedes calculation start")
	}

	switch in.JoiningCommission() {
	case domain.SeventhPC:
		if in.JoiningPay.Level == 0 {
			return domain.NewValidationError("joining_pay.level", "joining level is required for service beginning under the 7th commission")
		}
		if _, ok := refdata.MatrixLevel(in.JoiningPay.Level); !ok {
			return domain.NewValidationError("joining_pay.level", "unknown pay matrix level %d", in.JoiningPay.Level)
		}
	case domain.SixthPC:
		if in.JoiningPay.ScaleID == "" {
			return domain.NewValidationError("joining_pay.scale_id", "6th commission scale id is required")
		}
		if in.JoiningPay.PayInPayBand == 0 {
			return domain.NewValidationError("joining_pay.pay_in_pay_band", "pay in pay band is required")
		}
	default:
		if in.JoiningPay.ScaleID == "" {
			return domain.NewValidationError("joining_pay.scale_id", "scale id is required")
		}
		if in.JoiningPay.BasicPay == 0 {
			return domain.NewValidationError("joining_pay.basic_pay", "joining basic pay is required")
		}
	}

	for i, p := range in.Promotions {
		if domain.CommissionForDate(p.Date) >= domain.SeventhPC {
			if p.Level == 0 {
				return domain.NewValidationError(fmt.Sprintf("promotions[%d].level", i), "promotion under the 7th commission requires a level")
			}
			if _, ok := refdata.MatrixLevel(p.Level); !ok {
				return domain.NewValidationError(fmt.Sprintf("promotions[%d].level", i), "unknown pay matrix level %d", p.Level)
			}
		} else if domain.CommissionForDate(p.Date) == domain.SixthPC && p.GradePay == 0 {
			return domain.NewValidationError(fmt.Sprintf("promotions[%d].grade_pay", i), "promotion under the 6th commission requires a grade pay")
		}
	}

	for i, ch := range in.IncrementScheduleChanges {
		switch ch.Month {
		case 1, 4, 7, 10:
		default:
			return domain.NewValidationError(fmt.Sprintf("increment_schedule_changes[%d].month", i),
				"increment month must be January, April, July or October")
		}
	}

	return nil
}
