package chart

// PeakMarker flags a sudden weight increase as a probable watering event.
// Markers are immutable once computed and emitted in chronological order.
type PeakMarker struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	PrevY     float64 `json:"prev_y"`
	Label     string  `json:"label"`
	DaysSince int     `json:"days_since"`
}

// Peak tone classification, layered on top of the marker data to drive the
// two-color rendering scheme.
const (
	ToneFavorable = "favorable"
	ToneNeutral   = "neutral"
)

// DefaultFavorableBand is the default fraction of capacity below the
// threshold line within which a peak still counts as favorable. A product
// heuristic; kept configurable because the exact value may need tuning.
const DefaultFavorableBand = 0.10

// DetectPeaks scans a chronological series for local maxima whose rise from
// the previous sample is at least capacity*deltaFraction. Each accepted
// marker carries a locale-formatted day/month label and the number of
// calendar days since the previous accepted peak (0 for the first).
//
// Returns an empty slice when capacity or deltaFraction is not a positive
// finite number, or when fewer than 3 valid samples exist. Invalid samples
// are skipped in place without aborting the scan.
func DetectPeaks(samples []Sample, capacity, deltaFraction float64, locale DateLocale) []PeakMarker {
	peaks := []PeakMarker{}

	if !isFinite(capacity) || capacity <= 0 {
		return peaks
	}
	if !isFinite(deltaFraction) || deltaFraction <= 0 {
		return peaks
	}

	valid := 0
	for _, s := range samples {
		if s.Valid() {
			valid++
		}
	}
	if valid < 3 {
		return peaks
	}

	threshold := capacity * deltaFraction

	var lastPeakX float64
	havePeak := false

	for i := 1; i < len(samples)-1; i++ {
		prev, cur, next := samples[i-1], samples[i], samples[i+1]
		if !prev.Valid() || !cur.Valid() || !next.Valid() {
			continue
		}
		if cur.Y <= prev.Y || cur.Y <= next.Y {
			continue
		}
		if cur.Y-prev.Y < threshold {
			continue
		}

		days := 0
		if havePeak {
			days = DaysBetweenCalendarDates(int64(lastPeakX), int64(cur.X))
		}

		peaks = append(peaks, PeakMarker{
			X:         cur.X,
			Y:         cur.Y,
			PrevY:     prev.Y,
			Label:     locale.DayMonth(int64(cur.X)),
			DaysSince: days,
		})
		lastPeakX = cur.X
		havePeak = true
	}

	return peaks
}

// ClassifyPeak tags a marker for rendering: favorable when the preceding
// value sat at or above the threshold line, or within band*capacity below
// it; neutral otherwise. Without a threshold line every peak is neutral.
func ClassifyPeak(m PeakMarker, thresholdY float64, haveThreshold bool, capacity, band float64) string {
	if !haveThreshold || !isFinite(thresholdY) || !isFinite(capacity) || capacity <= 0 {
		return ToneNeutral
	}
	if m.PrevY >= thresholdY-band*capacity {
		return ToneFavorable
	}
	return ToneNeutral
}
