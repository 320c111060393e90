package chart

import (
	"math"
	"testing"
)

func TestDetectFirstBelow(t *testing.T) {
	tests := []struct {
		name       string
		samples    []Sample
		thresholdY float64
		enabled    bool
		expected   *ThresholdCrossing
	}{
		{
			name: "simple crossing",
			samples: []Sample{
				{X: day(1), Y: 12},
				{X: day(2), Y: 9},
			},
			thresholdY: 10,
			enabled:    true,
			expected:   &ThresholdCrossing{X: day(2), Y: 9, Index: 1},
		},
		{
			name: "only the first crossing is reported",
			samples: []Sample{
				{X: day(1), Y: 12},
				{X: day(2), Y: 9},  // first crossing
				{X: day(3), Y: 15}, // recovers
				{X: day(4), Y: 8},  // crosses again, ignored
			},
			thresholdY: 10,
			enabled:    true,
			expected:   &ThresholdCrossing{X: day(2), Y: 9, Index: 1},
		},
		{
			name: "starting below threshold is not a crossing",
			samples: []Sample{
				{X: day(1), Y: 5},
				{X: day(2), Y: 4},
				{X: day(3), Y: 3},
			},
			thresholdY: 10,
			enabled:    true,
			expected:   nil,
		},
		{
			name: "exactly on threshold counts as above",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: 9.5},
			},
			thresholdY: 10,
			enabled:    true,
			expected:   &ThresholdCrossing{X: day(2), Y: 9.5, Index: 1},
		},
		{
			name: "invalid neighbor is skipped, not fatal",
			samples: []Sample{
				{X: day(1), Y: 12},
				{X: day(2), Y: math.NaN()},
				{X: day(3), Y: 9},
			},
			thresholdY: 10,
			enabled:    true,
			expected:   &ThresholdCrossing{X: day(3), Y: 9, Index: 2},
		},
		{
			name: "disabled",
			samples: []Sample{
				{X: day(1), Y: 12},
				{X: day(2), Y: 9},
			},
			thresholdY: 10,
			enabled:    false,
			expected:   nil,
		},
		{
			name: "non-finite threshold",
			samples: []Sample{
				{X: day(1), Y: 12},
				{X: day(2), Y: 9},
			},
			thresholdY: math.NaN(),
			enabled:    true,
			expected:   nil,
		},
		{
			name:       "single valid sample",
			samples:    []Sample{{X: day(1), Y: 12}},
			thresholdY: 10,
			enabled:    true,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFirstBelow(tt.samples, tt.thresholdY, tt.enabled)
			if tt.expected == nil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got nil", tt.expected)
			}
			if *got != *tt.expected {
				t.Errorf("expected %+v, got %+v", *tt.expected, *got)
			}
		})
	}
}

func TestCrossingOnPeakDay(t *testing.T) {
	crossing := &ThresholdCrossing{X: day(4), Y: 9, Index: 3}

	if CrossingOnPeakDay(crossing, []PeakMarker{{X: day(2)}}) {
		t.Error("peak on a different day must not suppress the crossing")
	}
	if !CrossingOnPeakDay(crossing, []PeakMarker{{X: day(2)}, {X: day(4)}}) {
		t.Error("same-day peak must suppress the crossing")
	}
	if CrossingOnPeakDay(nil, []PeakMarker{{X: day(4)}}) {
		t.Error("nil crossing is never suppressed")
	}
}

func TestCrossingDaysSince(t *testing.T) {
	samples := []Sample{
		{X: day(1), Y: 40},
		{X: day(3), Y: 30},
		{X: day(6), Y: 9},
	}
	crossing := &ThresholdCrossing{X: day(6), Y: 9, Index: 2}

	// With a preceding peak, measure from the peak.
	peaks := []PeakMarker{{X: day(3), Y: 30}}
	if got := CrossingDaysSince(crossing, peaks, samples); got != 3 {
		t.Errorf("expected 3 days since peak, got %d", got)
	}

	// Without any peak, fall back to the first sample.
	if got := CrossingDaysSince(crossing, nil, samples); got != 5 {
		t.Errorf("expected 5 days since first sample, got %d", got)
	}

	// Peaks after the crossing do not count.
	late := []PeakMarker{{X: day(8), Y: 50}}
	if got := CrossingDaysSince(crossing, late, samples); got != 5 {
		t.Errorf("expected fallback to first sample, got %d", got)
	}
}
