package chart

import (
	"testing"
	"time"
)

func localMS(year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local).UnixMilli()
}

func TestDaysBetweenCalendarDates(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int
	}{
		{
			name:     "same instant",
			a:        localMS(2024, time.January, 1, 12, 0),
			b:        localMS(2024, time.January, 1, 12, 0),
			expected: 0,
		},
		{
			name:     "same day different times",
			a:        localMS(2024, time.January, 1, 0, 5),
			b:        localMS(2024, time.January, 1, 23, 55),
			expected: 0,
		},
		{
			name:     "ignores time of day across midnight",
			a:        localMS(2024, time.January, 1, 23, 59),
			b:        localMS(2024, time.January, 2, 0, 1),
			expected: 1,
		},
		{
			name:     "a week apart",
			a:        localMS(2024, time.March, 1, 9, 0),
			b:        localMS(2024, time.March, 8, 21, 0),
			expected: 7,
		},
		{
			name:     "order does not matter",
			a:        localMS(2024, time.February, 10, 8, 0),
			b:        localMS(2024, time.February, 7, 22, 0),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetweenCalendarDates(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %d days, got %d", tt.expected, got)
			}
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	if !SameCalendarDay(localMS(2024, time.May, 3, 0, 1), localMS(2024, time.May, 3, 23, 59)) {
		t.Error("expected same calendar day")
	}
	if SameCalendarDay(localMS(2024, time.May, 3, 23, 59), localMS(2024, time.May, 4, 0, 1)) {
		t.Error("expected different calendar days")
	}
}

func TestDateLocaleFormats(t *testing.T) {
	ts := localMS(2024, time.January, 2, 19, 33)

	if got := DayFirst.DayMonth(ts); got != "02/01" {
		t.Errorf("day-first label: expected 02/01, got %s", got)
	}
	if got := MonthFirst.DayMonth(ts); got != "01/02" {
		t.Errorf("month-first label: expected 01/02, got %s", got)
	}
	if got := DayFirst.Timestamp(ts); got != "02/01/2024 19:33" {
		t.Errorf("day-first timestamp: expected 24h clock, got %s", got)
	}
	if got := MonthFirst.Timestamp(ts); got != "01/02/2024 7:33 PM" {
		t.Errorf("month-first timestamp: expected 12h clock, got %s", got)
	}

	if ParseDateLocale("month-first") != MonthFirst {
		t.Error("expected month-first to parse")
	}
	if ParseDateLocale("anything-else") != DayFirst {
		t.Error("expected fallback to day-first")
	}
}
