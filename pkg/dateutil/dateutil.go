package dateutil

import (
	"fmt"
	"time"
)

// EarliestSupportedDate is the floor for every date the engine accepts.
// Service records older than this predate the 3rd pay commission tables.
var EarliestSupportedDate = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseUTC parses a YYYY-MM-DD date string into a UTC time.
func ParseUTC(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t.UTC(), nil
}

// MustParseUTC is ParseUTC for compile-time-known literals (tables, tests).
func MustParseUTC(value string) time.Time {
	t, err := ParseUTC(value)
	if err != nil {
		panic(err)
	}
	return t
}

// Date builds a UTC date at midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FirstOfMonth returns midnight UTC on the 1st of the date's month.
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns midnight UTC on the final day of the date's month.
func LastOfMonth(date time.Time) time.Time {
	return FirstOfMonth(date).AddDate(0, 1, -1)
}

// AddMonths adds a number of calendar months.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// AddYears adds a number of calendar years.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddDays adds a number of calendar days.
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// DaysBetween counts whole calendar days from start to end (end exclusive).
// Returns 0 when end is not after start.
func DaysBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// SameYearMonth reports whether two dates fall in the same calendar month.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MinDate returns the earlier of two dates.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of two dates.
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// FormatDDMMYYYY renders a date as DD/MM/YYYY, the format used throughout
// government service records.
func FormatDDMMYYYY(date time.Time) string {
	return date.Format("02/01/2006")
}
