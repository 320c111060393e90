package watering

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const secsPerDay = 24 * 60 * 60

// FrequencyDays estimates how often a plant gets watered, in whole days.
// It takes the median of the intervals between consecutive watering events
// since the last repotting, rounded to the nearest day. The median keeps a
// single extra-long or short interval from skewing the estimate.
//
// Returns the event count alongside; ok is false when fewer than two events
// exist since the repot.
func FrequencyDays(history []Measurement) (days int, events int, ok bool) {
	var times []float64
	for _, m := range SinceLastRepotting(history) {
		if IsWateringEvent(m) {
			times = append(times, float64(m.MeasuredAt.Unix()))
		}
	}
	events = len(times)
	if events < 2 {
		return 0, events, false
	}

	intervals := make([]float64, 0, events-1)
	for i := 1; i < len(times); i++ {
		dt := (times[i] - times[i-1]) / secsPerDay
		if dt >= 0 {
			intervals = append(intervals, dt)
		}
	}
	if len(intervals) == 0 {
		return 0, events, false
	}

	sort.Float64s(intervals)
	median := stat.Quantile(0.5, stat.Empirical, intervals, nil)

	return int(math.Round(median)), events, true
}
