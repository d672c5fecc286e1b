package utils

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/constants"
)

// Dates are carried as YYYY-MM-DD strings throughout the application; these
// helpers are the only place they are converted to and from time.Time.

// Today returns today's date string (YYYY-MM-DD) in the system timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// FormatDay renders t as a YYYY-MM-DD date string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ValidDay reports whether day is a well-formed YYYY-MM-DD date string.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// AddDays returns the date string n calendar days after day (n may be
// negative). day must be well-formed.
func AddDays(day string, n int) string {
	t, err := ParseDay(day)
	if err != nil {
		panic(err)
	}
	return FormatDay(t.AddDate(0, 0, n))
}

// PrevDay returns the calendar day before day.
func PrevDay(day string) string {
	return AddDays(day, -1)
}

// Weekday returns the weekday of a date string (time.Sunday..time.Saturday).
func Weekday(day string) time.Weekday {
	t, err := ParseDay(day)
	if err != nil {
		panic(err)
	}
	return t.Weekday()
}

// DaysBetween returns the number of calendar days from a to b (positive when
// b is after a). Both must be well-formed.
func DaysBetween(a, b string) int {
	ta, err := ParseDay(a)
	if err != nil {
		panic(err)
	}
	tb, err := ParseDay(b)
	if err != nil {
		panic(err)
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(day string) bool {
	wd := Weekday(day)
	return wd == time.Saturday || wd == time.Sunday
}
