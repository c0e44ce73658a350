// Package pricing implements the cost estimate computation core: date
// coercion, day-accurate proration of monthly rates, site grouping of line
// items, and the field-edit mutation engine.
//
// Everything in this package is a pure function over in-memory values;
// persistence and rendering stay behind the usecase layer.
package pricing

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidDateRange = errors.New("end date before start date")

// ProratedPrice charges a flat monthly rate over an inclusive date range,
// prorating partial months by the actual number of days in each calendar
// month (no 30-day approximation; rental math must match what was billed
// historically):
//
//	for each calendar month touched by [start, end]:
//	    dailyRate = monthly / daysInMonth
//	    charge   += dailyRate * daysCoveredInThatMonth
//
// A single-day range yields monthly/daysInMonth. start == end counts one
// day. Ranges spanning year boundaries accumulate month by month.
func ProratedPrice(monthly float64, start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}

	total := 0.0
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		days := daysInMonth(cur.Year(), cur.Month())
		dailyRate := monthly / float64(days)

		startDay := 1
		if cur.Year() == start.Year() && cur.Month() == start.Month() {
			startDay = start.Day()
		}
		endDay := days
		if cur.Year() == end.Year() && cur.Month() == end.Month() {
			endDay = end.Day()
		}

		total += dailyRate * float64(endDay-startDay+1)
		cur = cur.AddDate(0, 1, 0)
	}
	return total, nil
}

// InclusiveDays counts the days in [start, end], both ends included.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// RoundToCents rounds to 2 decimal places for display. Internal totals keep
// full precision so recomputation stays idempotent.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
