package chart

import "time"

const msPerDay = 86_400_000

// DaysBetweenCalendarDates returns the number of whole calendar days
// between two millisecond timestamps, ignoring time-of-day: both are
// truncated to local midnight before differencing. (Jan 1 23:59, Jan 2
// 00:01) is one day apart, not zero. The result is never negative.
func DaysBetweenCalendarDates(tsA, tsB int64) int {
	a := localMidnightMS(tsA)
	b := localMidnightMS(tsB)
	diff := b - a
	if diff < 0 {
		diff = -diff
	}
	return int(diff / msPerDay)
}

// SameCalendarDay reports whether two millisecond timestamps fall on the
// same local calendar day.
func SameCalendarDay(tsA, tsB int64) bool {
	return localMidnightMS(tsA) == localMidnightMS(tsB)
}

func localMidnightMS(ts int64) int64 {
	t := time.UnixMilli(ts)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}
