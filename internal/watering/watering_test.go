package watering

import (
	"testing"
	"time"
)

func iptr(v int) *int { return &v }

func at(day int) time.Time {
	return time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
}

// weighing is a plain weight measurement.
func weighing(day, grams int) Measurement {
	return Measurement{MeasuredAt: at(day), MeasuredWeightG: iptr(grams)}
}

// event is a watering event: no measured weight, dry/wet pair and water added.
func event(day, dry, wet, added int) Measurement {
	return Measurement{
		MeasuredAt:     at(day),
		LastDryWeightG: iptr(dry),
		LastWetWeightG: iptr(wet),
		WaterAddedG:    iptr(added),
	}
}

func repot(day int) Measurement {
	return Measurement{MeasuredAt: at(day), Repotting: true}
}

func TestIsWateringEvent(t *testing.T) {
	tests := []struct {
		name     string
		m        Measurement
		expected bool
	}{
		{"full watering row", event(1, 180, 420, 240), true},
		{"plain weighing", weighing(1, 400), false},
		{"zero water added", event(1, 180, 420, 0), false},
		{
			"missing wet weight",
			Measurement{MeasuredAt: at(1), LastDryWeightG: iptr(180), WaterAddedG: iptr(240)},
			false,
		},
		{
			"measured weight present disqualifies",
			Measurement{
				MeasuredAt:      at(1),
				MeasuredWeightG: iptr(400),
				LastDryWeightG:  iptr(180),
				LastWetWeightG:  iptr(420),
				WaterAddedG:     iptr(240),
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWateringEvent(tt.m); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSinceLastRepotting(t *testing.T) {
	history := []Measurement{
		weighing(1, 400),
		event(2, 180, 420, 240),
		repot(5),
		weighing(6, 500),
		weighing(7, 480),
	}

	got := SinceLastRepotting(history)
	if len(got) != 2 {
		t.Fatalf("expected 2 measurements after repot, got %d", len(got))
	}
	if !got[0].MeasuredAt.Equal(at(6)) {
		t.Errorf("expected history to start at day 6, got %v", got[0].MeasuredAt)
	}

	// No repotting: full history.
	if got := SinceLastRepotting(history[:2]); len(got) != 2 {
		t.Errorf("expected full history without a repot, got %d rows", len(got))
	}

	// Repot is the latest row: nothing after it.
	if got := SinceLastRepotting(history[:3]); len(got) != 0 {
		t.Errorf("expected empty slice right after a repot, got %d rows", len(got))
	}
}

func TestFrequencyDays(t *testing.T) {
	tests := []struct {
		name     string
		history  []Measurement
		days     int
		events   int
		ok       bool
	}{
		{
			name:    "no events",
			history: []Measurement{weighing(1, 400), weighing(2, 390)},
			events:  0,
			ok:      false,
		},
		{
			name:    "single event is not enough",
			history: []Measurement{event(1, 180, 420, 240)},
			events:  1,
			ok:      false,
		},
		{
			name: "regular weekly watering",
			history: []Measurement{
				event(1, 180, 420, 240),
				event(8, 180, 420, 240),
				event(15, 180, 420, 240),
			},
			days:   7,
			events: 3,
			ok:     true,
		},
		{
			name: "median resists one outlier interval",
			history: []Measurement{
				event(1, 180, 420, 240),
				event(8, 180, 420, 240),
				event(15, 180, 420, 240),
				event(16, 180, 420, 240), // emergency top-up next day
				event(23, 180, 420, 240),
			},
			days:   7,
			events: 5,
			ok:     true,
		},
		{
			name: "events before repot are ignored",
			history: []Measurement{
				event(1, 180, 420, 240),
				event(3, 180, 420, 240),
				repot(4),
				event(5, 200, 460, 260),
				event(12, 200, 460, 260),
			},
			days:   7,
			events: 2,
			ok:     true,
		},
		{
			name: "only one event since repot",
			history: []Measurement{
				event(1, 180, 420, 240),
				event(3, 180, 420, 240),
				repot(4),
				event(5, 200, 460, 260),
			},
			events: 1,
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, events, ok := FrequencyDays(tt.history)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if events != tt.events {
				t.Errorf("expected %d events, got %d", tt.events, events)
			}
			if ok && days != tt.days {
				t.Errorf("expected %d days, got %d", tt.days, days)
			}
		})
	}
}

func TestComputeExtremes(t *testing.T) {
	history := []Measurement{
		weighing(1, 400),
		event(2, 180, 420, 240),
		weighing(3, 350),
		weighing(4, 380),
		event(5, 180, 430, 260),
	}

	e := ComputeExtremes(history)
	if e.MinDryWeightG == nil || *e.MinDryWeightG != 350 {
		t.Errorf("expected min dry weight 350, got %v", e.MinDryWeightG)
	}
	if e.MaxWaterAddedG == nil || *e.MaxWaterAddedG != 260 {
		t.Errorf("expected max water added 260, got %v", e.MaxWaterAddedG)
	}

	// A repot resets both extremes.
	history = append(history, repot(6), weighing(7, 520))
	e = ComputeExtremes(history)
	if e.MinDryWeightG == nil || *e.MinDryWeightG != 520 {
		t.Errorf("expected post-repot min 520, got %v", e.MinDryWeightG)
	}
	if e.MaxWaterAddedG != nil {
		t.Errorf("expected no watering maximum after repot, got %v", *e.MaxWaterAddedG)
	}

	// Empty history.
	e = ComputeExtremes(nil)
	if e.MinDryWeightG != nil || e.MaxWaterAddedG != nil {
		t.Error("expected nil extremes for empty history")
	}
}
