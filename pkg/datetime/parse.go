// Package datetime provides campaign date parsing and sequencing utilities.
package datetime

import (
	"time"

	"github.com/svanduffel/reach-planner/pkg/constants"
)

const (
	// DateLayout is the format expected for campaign dates and is also the
	// output date format.
	DateLayout = constants.DateLayout
)

// MustParseDate parses an ISO date string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a strict ISO calendar date (YYYY-MM-DD). Dates that do not
// round-trip, such as "2025-13-01" or "2025-02-30", are rejected rather than
// rolled over.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// DiffDaysInclusive returns the inclusive calendar-day count between two ISO
// dates (same start and end counts as 1). The second return value is false
// when either date is unparseable; a reversed range is returned as-is with a
// non-positive count.
func DiffDaysInclusive(start, end string) (int, bool) {
	startT, err := ParseDate(start)
	if err != nil {
		return 0, false
	}
	endT, err := ParseDate(end)
	if err != nil {
		return 0, false
	}
	days := int(endT.Sub(startT).Hours()/24) + 1
	return days, true
}

// DaysBetweenInclusive is the defensive form of DiffDaysInclusive used by all
// business logic: unparseable dates and reversed ranges both yield 0.
func DaysBetweenInclusive(start, end string) int {
	days, ok := DiffDaysInclusive(start, end)
	if !ok || days < 0 {
		return 0
	}
	return days
}

// SequenceDates generates count consecutive calendar dates starting at the
// given ISO date. Day steps use calendar arithmetic so the sequence is safe
// across DST transitions. An invalid start date or non-positive count yields
// an empty sequence.
func SequenceDates(start string, count int) []time.Time {
	base, err := ParseDate(start)
	if err != nil || count <= 0 {
		return nil
	}
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		dates[i] = base.AddDate(0, 0, i)
	}
	return dates
}

// FormatISO renders a date in the YYYY-MM-DD output format.
func FormatISO(t time.Time) string {
	return t.Format(DateLayout)
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate, secondDate string) (bool, error) {
	firstT, err := ParseDate(firstDate)
	if err != nil {
		return false, err
	}
	secondT, err := ParseDate(secondDate)
	if err != nil {
		return false, err
	}
	return firstT.Before(secondT), nil
}
