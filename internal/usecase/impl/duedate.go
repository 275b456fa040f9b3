package impl

import (
	"math"
	"time"
)

// nextDueDate returns the calendar date on which service next becomes due,
// given the last-serviced instant and the usage-hours limit. Elapsed days are
// the ceiling of hoursLimit over the projected average daily usage; the
// result carries the date only, the time of day is dropped.
func nextDueDate(lastServiced time.Time, hoursLimit, avgDailyUsage float64) time.Time {
	if avgDailyUsage <= 0 {
		// A non-positive rate cannot project forward.
		return lastServiced
	}

	days := int(math.Ceil(hoursLimit / avgDailyUsage))
	year, month, day := lastServiced.Date()

	return time.Date(year, month, day+days, 0, 0, 0, 0, lastServiced.Location())
}

// sameDate reports whether two instants fall on the same calendar date.
// Comparing the date components directly keeps the check robust against
// instant and time zone skew.
func sameDate(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()

	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
