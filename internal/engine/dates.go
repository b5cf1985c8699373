package engine

import (
	"math"
	"time"
)

// midnight truncates a timestamp to the start of its calendar day in its
// own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDays counts calendar-day boundaries from a to b. Rounding absorbs
// the odd-length days around DST transitions.
func calendarDays(a, b time.Time) int {
	return int(math.Round(midnight(b).Sub(midnight(a)).Hours() / 24))
}

// daysBetween is the number of whole days from a to b, floored at zero when
// the dates are inverted.
func daysBetween(a, b time.Time) int {
	if d := calendarDays(a, b); d > 0 {
		return d
	}
	return 0
}

// daysInclusive counts calendar days from a through b, both ends included,
// so a same-day span counts as one day.
func daysInclusive(a, b time.Time) int {
	return calendarDays(a, b) + 1
}
