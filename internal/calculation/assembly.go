package calculation

import (
	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

// assembleResult groups the emitted periods by year and attaches fixation
// snapshots, the revision audit trail and the increment tallies.
func (sim *simulation) assembleResult() *domain.PayrollResult {
	in := sim.input

	var years []domain.YearlyCalculation
	for _, p := range sim.periods {
		if len(years) == 0 || years[len(years)-1].Year != p.Year {
			years = append(years, domain.YearlyCalculation{Year: p.Year})
		}
		years[len(years)-1].Periods = append(years[len(years)-1].Periods, p)
	}

	counters := sim.counters
	counters.Total = counters.Regular + counters.SelectionGrade + counters.SpecialGrade +
		counters.Promotion + counters.AccountTest

	result := &domain.PayrollResult{
		CaseID:             in.CaseID,
		EmployeeDetails:    buildEmployeeDetails(in),
		Fixation4thPC:      sim.snapshots[domain.FourthPC],
		Fixation5thPC:      sim.snapshots[domain.FifthPC],
		Fixation6thPC:      sim.snapshots[domain.SixthPC],
		Fixation7thPC:      sim.snapshots[domain.SeventhPC],
		YearlyCalculations: years,
		AppliedRevisions:   sim.revisions,
		IncrementAnalysis:  counters,
	}
	return result
}

func buildEmployeeDetails(in *domain.EmployeeInput) domain.EmployeeDetails {
	details := domain.EmployeeDetails{
		Name:                 in.Name,
		EmployeeID:           in.EmployeeID,
		Designation:          in.Designation,
		OfficeName:           in.OfficeName,
		JoiningPost:          in.JoiningPost.Name(),
		DateOfBirth:          dateutil.FormatDDMMYYYY(in.DateOfBirth),
		DateOfJoiningService: dateutil.FormatDDMMYYYY(in.DateOfJoiningService),
		RetirementDate:       dateutil.FormatDDMMYYYY(in.RetirementDate()),
		CityClass:            string(in.CityClass),
	}
	if !in.DateOfJoiningOffice.IsZero() {
		details.DateOfJoiningOffice = dateutil.FormatDDMMYYYY(in.DateOfJoiningOffice)
	}
	if in.DateOfRelief != nil {
		details.DateOfRelief = dateutil.FormatDDMMYYYY(*in.DateOfRelief)
	}
	return details
}
