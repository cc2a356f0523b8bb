package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUTC(t *testing.T) {
	d, err := ParseUTC("2018-07-01")
	assert.NoError(t, err)
	assert.Equal(t, 2018, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseUTC("01/07/2018")
	assert.Error(t, err)
}

func TestFirstAndLastOfMonth(t *testing.T) {
	d := Date(2024, time.February, 15)
	assert.Equal(t, Date(2024, time.February, 1), FirstOfMonth(d))
	assert.Equal(t, Date(2024, time.February, 29), LastOfMonth(d))
	assert.Equal(t, Date(2023, time.February, 28), LastOfMonth(Date(2023, time.February, 10)))
	assert.Equal(t, Date(2021, time.December, 31), LastOfMonth(Date(2021, time.December, 1)))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"same day", Date(2020, time.March, 1), Date(2020, time.March, 1), 0},
		{"end before start", Date(2020, time.March, 2), Date(2020, time.March, 1), 0},
		{"sixty day break", Date(2020, time.November, 1), Date(2020, time.December, 31), 60},
		{"across leap day", Date(2020, time.February, 28), Date(2020, time.March, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.start, tt.end))
		})
	}
}

func TestSameYearMonth(t *testing.T) {
	assert.True(t, SameYearMonth(Date(2019, time.July, 1), Date(2019, time.July, 31)))
	assert.False(t, SameYearMonth(Date(2019, time.July, 1), Date(2019, time.August, 1)))
	assert.False(t, SameYearMonth(Date(2019, time.July, 1), Date(2020, time.July, 1)))
}

func TestFormatDDMMYYYY(t *testing.T) {
	assert.Equal(t, "01/07/2018", FormatDDMMYYYY(Date(2018, time.July, 1)))
	assert.Equal(t, "29/02/2024", FormatDDMMYYYY(Date(2024, time.February, 29)))
}

func TestAddDaysShiftsAcrossMonths(t *testing.T) {
	// 60-day postponement from a first-of-month scheduled date
	assert.Equal(t, Date(2021, time.August, 30), AddDays(Date(2021, time.July, 1), 60))
}
