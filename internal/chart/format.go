package chart

import "time"

// DateLocale selects between day-first (DD/MM, 24h clock) and month-first
// (MM/DD, 12h clock) display. It is threaded in explicitly by the caller;
// the engine never reads ambient locale state.
type DateLocale string

const (
	DayFirst   DateLocale = "day-first"
	MonthFirst DateLocale = "month-first"
)

// ParseDateLocale maps a user-preference string onto a DateLocale,
// defaulting to day-first for anything unrecognized.
func ParseDateLocale(s string) DateLocale {
	if DateLocale(s) == MonthFirst {
		return MonthFirst
	}
	return DayFirst
}

// DayMonth formats a millisecond timestamp as a short day/month label for
// peak markers: "02/01" day-first, "01/02" month-first.
func (l DateLocale) DayMonth(ts int64) string {
	t := time.UnixMilli(ts)
	if l == MonthFirst {
		return t.Format("01/02")
	}
	return t.Format("02/01")
}

// Timestamp formats a millisecond timestamp for tooltip text, using the
// locale's preferred clock.
func (l DateLocale) Timestamp(ts int64) string {
	t := time.UnixMilli(ts)
	if l == MonthFirst {
		return t.Format("01/02/2006 3:04 PM")
	}
	return t.Format("02/01/2006 15:04")
}
