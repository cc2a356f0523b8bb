package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tn-payroll/payroll-engine/internal/domain"
)

// ConsoleFormatter renders the result as a plain-text report: a header
// block, fixation summaries, one table per year, and the increment tallies.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	d := result.EmployeeDetails
	fmt.Fprintf(buf, "PAY HISTORY: %s\n", d.Name)
	fmt.Fprintf(buf, "%s\n\n", strings.Repeat("=", 60))
	fmt.Fprintf(buf, "Joining Post:       %s\n", d.JoiningPost)
	fmt.Fprintf(buf, "Date of Birth:      %s\n", d.DateOfBirth)
	fmt.Fprintf(buf, "Joined Service:     %s\n", d.DateOfJoiningService)
	if d.DateOfRelief != "" {
		fmt.Fprintf(buf, "Date of Relief:     %s\n", d.DateOfRelief)
	}
	fmt.Fprintf(buf, "Retirement Date:    %s\n", d.RetirementDate)
	fmt.Fprintf(buf, "City Class:         %s\n\n", d.CityClass)

	for _, snap := range []*domain.FixationSnapshot{
		result.Fixation4thPC, result.Fixation5thPC, result.Fixation6thPC, result.Fixation7thPC,
	} {
		if snap == nil {
			continue
		}
		fmt.Fprintf(buf, "Fixation w.e.f. %s: %d -> %d\n", snap.EffectiveDate, snap.PreRevisedPay, snap.InitialRevisedPay)
		if snap.Remark != "" {
			fmt.Fprintf(buf, "  %s\n", snap.Remark)
		}
	}
	if result.Fixation4thPC != nil || result.Fixation5thPC != nil ||
		result.Fixation6thPC != nil || result.Fixation7thPC != nil {
		fmt.Fprintln(buf)
	}

	for _, year := range result.YearlyCalculations {
		fmt.Fprintf(buf, "--- %d ---\n", year.Year)
		fmt.Fprintf(buf, "%-10s %8s %8s %6s %5s %8s %8s %8s\n",
			"Month", "Basic", "DA", "HRA", "CCA", "Gross", "Deduct", "Net")
		for _, p := range year.Periods {
			fmt.Fprintf(buf, "%-10s %8d %8d %6d %5d %8d %8d %8d\n",
				p.MonthName, p.BasicPay, p.DAAmount, p.HRA, p.CCA, p.GrossPay, p.TotalDeductions, p.NetPay)
			for _, r := range p.Remarks {
				fmt.Fprintf(buf, "    * %s\n", r)
			}
		}
		fmt.Fprintln(buf)
	}

	if len(result.AppliedRevisions) > 0 {
		fmt.Fprintln(buf, "Applied revisions:")
		for _, rev := range result.AppliedRevisions {
			fmt.Fprintf(buf, "  %s  %s", rev.Date, rev.Description)
			if rev.FromScale != "" || rev.ToScale != "" {
				fmt.Fprintf(buf, " (%s -> %s)", rev.FromScale, rev.ToScale)
			}
			fmt.Fprintln(buf)
		}
		fmt.Fprintln(buf)
	}

	a := result.IncrementAnalysis
	fmt.Fprintln(buf, "Increment analysis:")
	fmt.Fprintf(buf, "  Regular:         %d\n", a.Regular)
	fmt.Fprintf(buf, "  Selection Grade: %d\n", a.SelectionGrade)
	fmt.Fprintf(buf, "  Special Grade:   %d\n", a.SpecialGrade)
	fmt.Fprintf(buf, "  Promotion:       %d\n", a.Promotion)
	fmt.Fprintf(buf, "  Account Test:    %d\n", a.AccountTest)
	fmt.Fprintf(buf, "  Total:           %d\n", a.Total)

	return buf.Bytes(), nil
}
