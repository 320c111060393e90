package chart

// ThresholdCrossing marks the first sample where the series falls from
// at-or-above a reference value to below it. At most one exists per series.
type ThresholdCrossing struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Index int     `json:"index"`
}

// DetectFirstBelow scans chronologically for the first transition from
// y >= thresholdY to y < thresholdY and returns it, or nil when disabled,
// the threshold is not finite, or fewer than 2 valid samples exist.
//
// Only the first crossing is reported; later dips are ignored even if the
// series recovers above the threshold and drops again. Invalid samples are
// skipped: the comparison always runs against the last valid neighbor.
func DetectFirstBelow(samples []Sample, thresholdY float64, enabled bool) *ThresholdCrossing {
	if !enabled || !isFinite(thresholdY) {
		return nil
	}

	valid := 0
	for _, s := range samples {
		if s.Valid() {
			valid++
		}
	}
	if valid < 2 {
		return nil
	}

	havePrev := false
	var prevY float64
	for i, s := range samples {
		if !s.Valid() {
			continue
		}
		if havePrev && prevY >= thresholdY && s.Y < thresholdY {
			return &ThresholdCrossing{X: s.X, Y: s.Y, Index: i}
		}
		prevY = s.Y
		havePrev = true
	}

	return nil
}

// CrossingOnPeakDay reports whether the crossing falls on the same calendar
// day as any accepted peak. Such crossings are treated as noise from a
// same-day watering event and hidden by the caller; detection itself is
// unaffected.
func CrossingOnPeakDay(c *ThresholdCrossing, peaks []PeakMarker) bool {
	if c == nil {
		return false
	}
	for _, p := range peaks {
		if SameCalendarDay(int64(c.X), int64(p.X)) {
			return true
		}
	}
	return false
}

// CrossingDaysSince annotates a crossing with the calendar-day distance
// from the last peak preceding it, falling back to the distance from the
// first valid sample when no qualifying peak exists.
func CrossingDaysSince(c *ThresholdCrossing, peaks []PeakMarker, samples []Sample) int {
	if c == nil {
		return 0
	}
	for i := len(peaks) - 1; i >= 0; i-- {
		if peaks[i].X <= c.X {
			return DaysBetweenCalendarDates(int64(peaks[i].X), int64(c.X))
		}
	}
	for _, s := range samples {
		if s.Valid() {
			return DaysBetweenCalendarDates(int64(s.X), int64(c.X))
		}
	}
	return 0
}
