package util

import "time"

// MonthsSince returns the number of full calendar months elapsed between from
// and now, matching SQL TIMESTAMPDIFF(MONTH, from, now): the month counter
// only ticks once the day-of-month has been reached.
func MonthsSince(from, now time.Time) int {
	months := (now.Year()-from.Year())*12 + int(now.Month()) - int(from.Month())
	if now.Day() < from.Day() {
		months--
	}
	return months
}
