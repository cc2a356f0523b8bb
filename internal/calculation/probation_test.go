package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/pkg/dateutil"
)

func TestEvaluateProbationNoTestRequired(t *testing.T) {
	p := domain.ProbationSettings{
		Type:         domain.ProbationOneYear,
		StartDate:    dateutil.Date(2018, time.July, 1),
		TestRequired: false,
	}
	normal := dateutil.Date(2019, time.July, 1)
	for n := 1; n <= 3; n++ {
		d := EvaluateProbation(p, normal, n)
		assert.True(t, d.Eligible, "increment %d", n)
		assert.Equal(t, normal, d.EffectiveDate)
		assert.False(t, d.Withheld)
	}
}

func TestEvaluateProbationGatedIncrement(t *testing.T) {
	start := dateutil.Date(2018, time.July, 1)
	normal := dateutil.Date(2019, time.July, 1)
	passEarly := dateutil.Date(2019, time.March, 10)
	passLate := dateutil.Date(2020, time.February, 20)

	tests := []struct {
		name      string
		probation domain.ProbationSettings
		n         int
		eligible  bool
		effective time.Time
		withheld  bool
	}{
		{
			name: "one year probation first increment passed early",
			probation: domain.ProbationSettings{
				Type: domain.ProbationOneYear, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPassed, TestPassDate: &passEarly,
			},
			n: 1, eligible: true, effective: normal,
		},
		{
			name: "one year probation first increment passed late",
			probation: domain.ProbationSettings{
				Type: domain.ProbationOneYear, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPassed, TestPassDate: &passLate,
			},
			n: 1, eligible: true, effective: passLate,
		},
		{
			name: "one year probation first increment pending",
			probation: domain.ProbationSettings{
				Type: domain.ProbationOneYear, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 1, eligible: false, withheld: true,
		},
		{
			name: "one year probation second increment not gated",
			probation: domain.ProbationSettings{
				Type: domain.ProbationOneYear, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 2, eligible: true, effective: normal,
		},
		{
			name: "two year probation gates the second increment",
			probation: domain.ProbationSettings{
				Type: domain.ProbationTwoYears, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 2, eligible: false, withheld: true,
		},
		{
			name: "two year probation first increment not gated",
			probation: domain.ProbationSettings{
				Type: domain.ProbationTwoYears, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 1, eligible: true, effective: normal,
		},
		{
			name: "custom 12 months behaves as one year",
			probation: domain.ProbationSettings{
				Type: domain.ProbationCustom, CustomMonths: 12, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 1, eligible: false, withheld: true,
		},
		{
			name: "custom 24 months behaves as two years",
			probation: domain.ProbationSettings{
				Type: domain.ProbationCustom, CustomMonths: 24, StartDate: start,
				TestRequired: true, TestStatus: domain.TestPending,
			},
			n: 1, eligible: true, effective: normal,
		},
		{
			name: "exempted clears the gate on the normal date",
			probation: domain.ProbationSettings{
				Type: domain.ProbationOneYear, StartDate: start,
				TestRequired: true, TestStatus: domain.TestExempted,
			},
			n: 1, eligible: true, effective: normal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateProbation(tt.probation, normal, tt.n)
			assert.Equal(t, tt.eligible, d.Eligible)
			assert.Equal(t, tt.withheld, d.Withheld)
			assert.False(t, d.Terminated)
			if tt.eligible {
				assert.Equal(t, tt.effective, d.EffectiveDate)
			} else {
				assert.Contains(t, d.Remark, "withheld")
			}
		})
	}
}

func TestEvaluateProbationTermination(t *testing.T) {
	start := dateutil.Date(2014, time.July, 1)
	p := domain.ProbationSettings{
		Type: domain.ProbationTwoYears, StartDate: start,
		TestRequired: true, TestStatus: domain.TestPending, TestName: "Account Test Part I",
	}

	// more than five years past the probation start
	d := EvaluateProbation(p, dateutil.Date(2020, time.July, 1), 4)
	assert.False(t, d.Eligible)
	assert.True(t, d.Terminated)
	assert.Contains(t, d.Remark, "PROBATION TERMINATED")
	assert.Contains(t, d.Remark, "Account Test Part I")

	// exactly five years is still inside the limit
	d = EvaluateProbation(p, dateutil.Date(2019, time.July, 1), 4)
	assert.False(t, d.Terminated)

	// a passed test never terminates
	pass := dateutil.Date(2015, time.January, 10)
	p.TestStatus = domain.TestPassed
	p.TestPassDate = &pass
	d = EvaluateProbation(p, dateutil.Date(2020, time.July, 1), 4)
	assert.True(t, d.Eligible)
	assert.False(t, d.Terminated)
}
