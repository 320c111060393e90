// Package chart implements the sparkline engine behind the plant weight
// charts: domain scaling, watering-peak detection, threshold crossings,
// hover lookup and tooltip layout. Everything in this package is a pure
// function over in-memory samples; the REST layer supplies the data.
package chart

import "math"

// Sample is a single (timestamp, weight) observation. X is a Unix timestamp
// in milliseconds, Y is the measured weight in grams. Callers are expected
// to supply one sample per day, already collapsed.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Valid reports whether both coordinates are finite numbers.
func (s Sample) Valid() bool {
	return isFinite(s.X) && isFinite(s.Y)
}

// SanitizeSamples filters a raw series down to samples with finite
// coordinates, preserving order. A nil input yields an empty slice rather
// than an error; one bad sample never hides the rest of the series.
func SanitizeSamples(raw []Sample) []Sample {
	out := make([]Sample, 0, len(raw))
	for _, s := range raw {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
