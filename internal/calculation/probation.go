package calculation

import (
	"fmt"
	"time"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

// ProbationDecision is the outcome of the eligibility check for one numbered
// annual increment.
type ProbationDecision struct {
	Eligible      bool
	EffectiveDate time.Time
	Withheld      bool
	Terminated    bool
	Remark        string
}

// probationTerminationYears is the service-rule limit: a required test not
// cleared within five years of the probation start terminates probation.
const probationTerminationYears = 5

// EvaluateProbation decides whether the n-th annual increment, falling due on
// normalDate, may be drawn. One-year probationers have their first increment
// gated on the departmental test; two-year probationers their second. Every
// other increment passes on its normal date.
func EvaluateProbation(p domain.ProbationSettings, normalDate time.Time, n int) ProbationDecision {
	testCleared := !p.TestRequired ||
		p.TestStatus == domain.TestPassed ||
		p.TestStatus == domain.TestExempted

	if p.TestRequired && !testCleared &&
		normalDate.After(dateutil.AddYears(p.StartDate, probationTerminationYears)) {
		return ProbationDecision{
			Eligible:   false,
			Terminated: true,
			Remark: fmt.Sprintf("PROBATION TERMINATED: %s not cleared within %d years of probation commencing %s",
				testLabel(p), probationTerminationYears, dateutil.FormatDDMMYYYY(p.StartDate)),
		}
	}

	if !p.TestRequired {
		return ProbationDecision{Eligible: true, EffectiveDate: normalDate}
	}

	gated := p.EffectiveYears() == n
	if !gated {
		return ProbationDecision{Eligible: true, EffectiveDate: normalDate}
	}

	switch p.TestStatus {
	case domain.TestExempted:
		return ProbationDecision{Eligible: true, EffectiveDate: normalDate}
	case domain.TestPassed:
		effective := normalDate
		if p.TestPassDate != nil {
			effective = dateutil.MaxDate(normalDate, *p.TestPassDate)
		}
		return ProbationDecision{Eligible: true, EffectiveDate: effective}
	default:
		return ProbationDecision{
			Eligible: false,
			Withheld: true,
			Remark: fmt.Sprintf("Increment %d withheld: %s not yet passed", n, testLabel(p)),
		}
	}
}

func testLabel(p domain.ProbationSettings) string {
	if p.TestName != "" {
		return p.TestName
	}
	if p.TestType != "" {
		return p.TestType
	}
	return "departmental test"
}
