package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tn-payroll/payroll-engine/internal/domain"
)

const validCase = `
name: S. Kumar
employee_id: TN-04-1123
date_of_birth: 1990-06-15
retirement_age: 60
date_of_joining_service: 2018-07-01
joining_post:
  custom_name: Junior Assistant
joining_pay:
  level: 7
probation:
  type: 2Y
  start_date: 2018-07-01
allowances:
  medical_allowance: 300
  pension_scheme: CPS
  pension_rate: 10
  professional_tax: 200
  gis: 110
city_class: B
calculation_start: 2018-07-01
calculation_end: 2019-12-31
`

func TestLoadValidCase(t *testing.T) {
	in, err := NewParser().Load([]byte(validCase))
	require.NoError(t, err)

	assert.Equal(t, "S. Kumar", in.Name)
	assert.Equal(t, 7, in.JoiningPay.Level)
	assert.Equal(t, domain.CityClassB, in.CityClass)
	assert.Equal(t, time.Date(2018, time.July, 1, 0, 0, 0, 0, time.UTC), in.DateOfJoiningService)
	assert.True(t, in.Allowances.PensionRate.Equal(domain.RateFromInt(10).Decimal))

	// a fresh case id is assigned when the file has none
	assert.NotEqual(t, uuid.Nil, in.CaseID)
}

func TestLoadAppliesDefaults(t *testing.T) {
	doc := `
name: A. Lakshmi
date_of_birth: 1985-01-20
date_of_joining_service: 2010-01-01
joining_pay:
  scale_id: "6.12"
  pay_in_pay_band: 9300
city_class: A
calculation_start: 2010-01-01
calculation_end: 2012-12-31
`
	in, err := NewParser().Load([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 58, in.RetirementAge)
	assert.Equal(t, domain.ProbationTwoYears, in.Probation.Type)
	assert.Equal(t, in.DateOfJoiningService, in.Probation.StartDate)
}

func TestLoadRejectsMissingName(t *testing.T) {
	doc := `
date_of_birth: 1990-06-15
date_of_joining_service: 2018-07-01
joining_pay:
  level: 7
city_class: B
calculation_start: 2018-07-01
calculation_end: 2019-12-31
`
	_, err := NewParser().Load([]byte(doc))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidCityClass(t *testing.T) {
	doc := strings.Replace(validCase, "city_class: B", "city_class: D", 1)
	_, err := NewParser().Load([]byte(doc))
	assert.Error(t, err)
}

func TestValidateStructuralRules(t *testing.T) {
	p := NewParser()

	base, err := p.Load([]byte(validCase))
	require.NoError(t, err)

	t.Run("end before start", func(t *testing.T) {
		in := *base
		in.CalculationEnd = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
		err := p.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "calculation_end")
	})

	t.Run("break end before start", func(t *testing.T) {
		in := *base
		in.ServiceBreaks = []domain.ServiceBreak{{
			Start: time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2019, time.February, 1, 0, 0, 0, 0, time.UTC),
		}}
		err := p.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service_breaks[0]")
	})

	t.Run("promotion without post name", func(t *testing.T) {
		in := *base
		in.Promotions = []domain.Promotion{{
			Date:  time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
			Level: 8,
		}}
		err := p.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "post_name")
	})

	t.Run("passed test needs a pass date", func(t *testing.T) {
		in := *base
		in.Probation.TestRequired = true
		in.Probation.TestStatus = domain.TestPassed
		err := p.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test_pass_date")
	})
}
