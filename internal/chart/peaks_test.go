package chart

import (
	"math"
	"testing"
	"time"
)

// day returns a noon timestamp (ms) for a day in January 2024.
func day(d int) float64 {
	return float64(time.Date(2024, time.January, d, 12, 0, 0, 0, time.Local).UnixMilli())
}

func TestDetectPeaks(t *testing.T) {
	tests := []struct {
		name          string
		samples       []Sample
		capacity      float64
		deltaFraction float64
		expected      []PeakMarker
	}{
		{
			name: "single watering peak",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: 40},
				{X: day(3), Y: 20},
			},
			capacity:      100,
			deltaFraction: 0.2, // threshold = 20
			expected: []PeakMarker{
				{X: day(2), Y: 40, PrevY: 10, Label: "02/01", DaysSince: 0},
			},
		},
		{
			name: "rise below threshold is not a peak",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: 25}, // rise of 15 < 20
				{X: day(3), Y: 20},
			},
			capacity:      100,
			deltaFraction: 0.2,
			expected:      []PeakMarker{},
		},
		{
			name: "monotonic increase never peaks",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: 40},
				{X: day(3), Y: 70},
				{X: day(4), Y: 100},
			},
			capacity:      100,
			deltaFraction: 0.2,
			expected:      []PeakMarker{},
		},
		{
			name: "monotonic decrease never peaks",
			samples: []Sample{
				{X: day(1), Y: 100},
				{X: day(2), Y: 70},
				{X: day(3), Y: 40},
			},
			capacity:      100,
			deltaFraction: 0.2,
			expected:      []PeakMarker{},
		},
		{
			name: "two peaks carry days since previous",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: 40},
				{X: day(3), Y: 15},
				{X: day(4), Y: 12},
				{X: day(9), Y: 45},
				{X: day(10), Y: 30},
			},
			capacity:      100,
			deltaFraction: 0.2,
			expected: []PeakMarker{
				{X: day(2), Y: 40, PrevY: 10, Label: "02/01", DaysSince: 0},
				{X: day(9), Y: 45, PrevY: 12, Label: "09/01", DaysSince: 7},
			},
		},
		{
			name: "invalid sample skips window but not scan",
			samples: []Sample{
				{X: day(1), Y: 10},
				{X: day(2), Y: math.NaN()},
				{X: day(3), Y: 12},
				{X: day(4), Y: 45},
				{X: day(5), Y: 20},
			},
			capacity:      100,
			deltaFraction: 0.2,
			expected: []PeakMarker{
				{X: day(4), Y: 45, PrevY: 12, Label: "04/01", DaysSince: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPeaks(tt.samples, tt.capacity, tt.deltaFraction, DayFirst)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d peaks, got %d: %+v", len(tt.expected), len(got), got)
			}
			for i, p := range got {
				if p != tt.expected[i] {
					t.Errorf("peak %d: expected %+v, got %+v", i, tt.expected[i], p)
				}
			}
		})
	}
}

func TestDetectPeaksGuards(t *testing.T) {
	good := []Sample{
		{X: day(1), Y: 10}, {X: day(2), Y: 40}, {X: day(3), Y: 20},
	}

	tests := []struct {
		name          string
		samples       []Sample
		capacity      float64
		deltaFraction float64
	}{
		{"zero capacity", good, 0, 0.2},
		{"negative capacity", good, -5, 0.2},
		{"NaN capacity", good, math.NaN(), 0.2},
		{"infinite capacity", good, math.Inf(1), 0.2},
		{"zero delta fraction", good, 100, 0},
		{"negative delta fraction", good, 100, -0.2},
		{"NaN delta fraction", good, 100, math.NaN()},
		{"two samples only", good[:2], 100, 0.2},
		{"nil samples", nil, 100, 0.2},
		{
			"three samples but one invalid",
			[]Sample{{X: day(1), Y: 10}, {X: day(2), Y: math.NaN()}, {X: day(3), Y: 20}},
			100, 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPeaks(tt.samples, tt.capacity, tt.deltaFraction, DayFirst)
			if len(got) != 0 {
				t.Errorf("expected no peaks, got %+v", got)
			}
		})
	}
}

func TestDetectPeaksMonthFirstLabel(t *testing.T) {
	samples := []Sample{
		{X: day(1), Y: 10},
		{X: day(2), Y: 40},
		{X: day(3), Y: 20},
	}
	got := DetectPeaks(samples, 100, 0.2, MonthFirst)
	if len(got) != 1 {
		t.Fatalf("expected one peak, got %d", len(got))
	}
	if got[0].Label != "01/02" {
		t.Errorf("expected month-first label 01/02, got %s", got[0].Label)
	}
}

func TestClassifyPeak(t *testing.T) {
	tests := []struct {
		name          string
		prevY         float64
		thresholdY    float64
		haveThreshold bool
		capacity      float64
		band          float64
		expected      string
	}{
		{"preceding value above threshold", 270, 260, true, 100, 0.10, ToneFavorable},
		{"exactly on threshold", 260, 260, true, 100, 0.10, ToneFavorable},
		{"within band below threshold", 251, 260, true, 100, 0.10, ToneFavorable},
		{"bottom of band", 250, 260, true, 100, 0.10, ToneFavorable},
		{"below band", 249, 260, true, 100, 0.10, ToneNeutral},
		{"no threshold line", 270, 0, false, 100, 0.10, ToneNeutral},
		{"NaN threshold", 270, math.NaN(), true, 100, 0.10, ToneNeutral},
		{"no capacity", 270, 260, true, 0, 0.10, ToneNeutral},
		{"wider band is tunable", 240, 260, true, 100, 0.25, ToneFavorable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := PeakMarker{PrevY: tt.prevY}
			got := ClassifyPeak(m, tt.thresholdY, tt.haveThreshold, tt.capacity, tt.band)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
