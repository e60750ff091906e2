package booking

import (
	"math"
	"time"
)

// periodTolerance is the slack allowed between a quoted duration and the
// computed calendar period before the divergence is flagged in the logs.
const periodTolerance = 0.05

// PeriodInMonths converts a concrete date range to a fractional month
// count, used for display and reconciliation against the monthly rate.
//
// The whole-month part is the calendar year/month difference. When the end
// day-of-month falls before the start day-of-month one month is borrowed
// and the remaining days become a fraction of the end month's length;
// otherwise the extra days become a fraction of the month following the
// start. The result is rounded to two decimals and never reported below
// one month.
func PeriodInMonths(start, end time.Time) float64 {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())

	var fraction float64
	if end.Day() < start.Day() {
		months--
		dim := daysInMonth(end.Year(), end.Month())
		fraction = float64(dim-start.Day()+end.Day()) / float64(dim)
	} else {
		dim := daysInMonth(start.Year(), start.Month()+1)
		fraction = float64(end.Day()-start.Day()) / float64(dim)
	}

	period := math.Round((float64(months)+fraction)*100) / 100
	if period < 1 {
		period = 1
	}
	return period
}

// daysInMonth returns the number of days in the given month. Month values
// outside 1..12 normalize the way time.Date does, so December+1 is January
// of the next year.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
