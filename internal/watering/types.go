// Package watering derives watering analytics from a plant's measurement
// history: event detection, frequency estimation, water-loss accounting and
// under-watering calibration. All functions are pure; callers load the rows.
package watering

import "time"

// Measurement is the slice of a stored measurement row the analytics need.
// Nullable columns are pointers, matching the storage layer: a watering
// event has no measured weight, only the dry/wet pair and the water added.
type Measurement struct {
	MeasuredAt      time.Time
	MeasuredWeightG *int
	LastDryWeightG  *int
	LastWetWeightG  *int
	WaterAddedG     *int
	// WaterLossDayG is the stored daily loss computed when the row was
	// written. Totals prefer it; rows without one are reconstructed
	// against their previous weighing.
	WaterLossDayG *int
	Repotting     bool
	Note          string
}

// IsWateringEvent reports whether a measurement records a watering: no
// measured weight, but a dry/wet weight pair and a positive water amount.
func IsWateringEvent(m Measurement) bool {
	return m.MeasuredWeightG == nil &&
		m.LastDryWeightG != nil &&
		m.LastWetWeightG != nil &&
		m.WaterAddedG != nil &&
		*m.WaterAddedG > 0
}

// LastWateringEvent returns the most recent watering event, or nil.
// Measurements are expected in ascending time order.
func LastWateringEvent(history []Measurement) *Measurement {
	for i := len(history) - 1; i >= 0; i-- {
		if IsWateringEvent(history[i]) {
			return &history[i]
		}
	}
	return nil
}

// LastRepotting returns the most recent repotting event, or nil.
func LastRepotting(history []Measurement) *Measurement {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Repotting {
			return &history[i]
		}
	}
	return nil
}

// SinceLastRepotting returns the measurements strictly after the last
// repotting event. Without one, the whole history is returned. A repot
// resets the pot's weight baseline, so older rows must not influence the
// minima/maxima or the frequency estimate.
func SinceLastRepotting(history []Measurement) []Measurement {
	repot := LastRepotting(history)
	if repot == nil {
		return history
	}
	for i := range history {
		if history[i].MeasuredAt.After(repot.MeasuredAt) {
			return history[i:]
		}
	}
	return nil
}
