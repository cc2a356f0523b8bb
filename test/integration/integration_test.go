package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tn-payroll/payroll-engine/internal/calculation"
	"github.com/tn-payroll/payroll-engine/internal/config"
	"github.com/tn-payroll/payroll-engine/internal/domain"
	"github.com/tn-payroll/payroll-engine/internal/output"
	"github.com/tn-payroll/payroll-engine/internal/refdata"
)

func runCase(t *testing.T, name string) *domain.PayrollResult {
	t.Helper()
	in, err := config.NewParser().LoadFromFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	result, err := calculation.NewEngine(nil).ComputePayrollHistory(in)
	require.NoError(t, err)
	return result
}

func TestFullCareerCase(t *testing.T) {
	result := runCase(t, "full_career.yaml")

	// 1984-03 through 2017-06 inclusive
	periods := result.Periods()
	require.Len(t, periods, 400)

	require.NotNil(t, result.Fixation4thPC)
	require.NotNil(t, result.Fixation5thPC)
	require.NotNil(t, result.Fixation6thPC)
	require.NotNil(t, result.Fixation7thPC)
	assert.Len(t, result.AppliedRevisions, 4)

	prev := domain.Commission(0)
	for _, p := range periods {
		assert.GreaterOrEqual(t, p.Commission, prev)
		prev = p.Commission
		assert.Equal(t, p.NetPay, p.GrossPay-p.TotalDeductions)
	}
	assert.Equal(t, domain.ThirdPC, periods[0].Commission)
	assert.Equal(t, domain.SeventhPC, periods[len(periods)-1].Commission)

	// every formatter renders the result without error
	for _, name := range output.AvailableFormatterNames() {
		data, err := output.GetFormatterByName(name).Format(result)
		require.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data)
	}
}

func TestSeventhPCEntrantCase(t *testing.T) {
	result := runCase(t, "seventh_pc_entrant.yaml")
	cells := refdata.PayMatrix[7]

	find := func(year int, month time.Month) domain.PayrollPeriod {
		for _, p := range result.Periods() {
			if p.Year == year && p.Month == month {
				return p
			}
		}
		t.Fatalf("missing period %d-%02d", year, month)
		return domain.PayrollPeriod{}
	}

	// the departmental test cleared before the first scheduled date, so
	// increments run annually each July; the account test doubles 2022
	assert.Equal(t, cells[0], find(2018, time.July).BasicPay)
	assert.Equal(t, cells[1], find(2019, time.July).BasicPay)
	assert.Equal(t, cells[2], find(2020, time.July).BasicPay)
	assert.Equal(t, cells[3], find(2021, time.July).BasicPay)
	assert.Equal(t, cells[5], find(2022, time.July).BasicPay)

	assert.Equal(t, 4, result.IncrementAnalysis.Regular)
	assert.Equal(t, 1, result.IncrementAnalysis.AccountTest)
	assert.Equal(t, 5, result.IncrementAnalysis.Total)
}
