package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/payscale"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
)

// SimulationState is the pay-structure state the monthly loop advances.
// Exactly one representation is live at a time, selected by Commission:
// ScaleID before 2006, PIPB plus GradePay under the 6th commission, Level
// under the 7th. A state belongs to exactly one simulation run.
type SimulationState struct {
	Date       time.Time
	Commission domain.Commission

	BasicPay int64

	ScaleID         string // pre-2006: current scale, possibly a grade scale
	OrdinaryScaleID string // pre-2006: the underlying ordinary scale

	PIPB     int64 // 6th commission
	GradePay int64 // 6th commission
	Level    int   // 7th commission

	CurrentPost string
	DARate      decimal.Decimal

	IncrementsGranted  int
	NextIncrementDate  time.Time
	AccountTestPending bool

	// bookkeeping: incrementLikeFired and monthRemarks are reset by the loop
	// each month; withheldNotedFor carries across months
	incrementLikeFired bool
	withheldNotedFor   time.Time
	monthRemarks       []string
}

// scale parses the state's current scale string.
func (s *SimulationState) scale() (*payscale.Scale, error) {
	entry, ok := refdata.ScaleByID(s.ScaleID)
	if !ok {
		return nil, domain.NewMappingError("scale", s.ScaleID)
	}
	return payscale.Parse(entry.Scale)
}

// remark appends a narrative observation to the current month.
func (s *SimulationState) remark(msg string) {
	s.monthRemarks = append(s.monthRemarks, msg)
}

// applyIncrementSteps advances pay by n increments in whichever structure is
// live.
func (s *SimulationState) applyIncrementSteps(n int) error {
	switch {
	case s.Commission >= domain.SeventhPC:
		pay, err := IncrementInMatrix(s.BasicPay, s.Level, n)
		if err != nil {
			return err
		}
		s.BasicPay = pay
	case s.Commission == domain.SixthPC:
		s.PIPB, s.BasicPay = IncrementInPayBand(s.PIPB, s.GradePay, n)
	default:
		sc, err := s.scale()
		if err != nil {
			return err
		}
		s.BasicPay = sc.Increment(s.BasicPay, n)
	}
	return nil
}
