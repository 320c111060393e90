package chart

import (
	"math"
	"testing"
)

func TestComputeDomain(t *testing.T) {
	tests := []struct {
		name     string
		samples  []Sample
		lines    []ReferenceLine
		expected Domain
	}{
		{
			name:     "empty series falls back to unit x-domain",
			samples:  nil,
			expected: Domain{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, SpanX: 1, SpanY: 1},
		},
		{
			name: "basic extents",
			samples: []Sample{
				{X: 10, Y: 100}, {X: 20, Y: 300}, {X: 30, Y: 200},
			},
			expected: Domain{MinX: 10, MaxX: 30, MinY: 100, MaxY: 300, SpanX: 20, SpanY: 200},
		},
		{
			name: "reference lines widen y only",
			samples: []Sample{
				{X: 10, Y: 100}, {X: 20, Y: 200},
			},
			lines: []ReferenceLine{
				{Y: 50, Label: "Dry"},
				{Y: 400, Label: "Max"},
				{Y: math.NaN(), Label: "broken"},
			},
			expected: Domain{MinX: 10, MaxX: 20, MinY: 50, MaxY: 400, SpanX: 10, SpanY: 350},
		},
		{
			name: "flat series gets fabricated unit y-span",
			samples: []Sample{
				{X: 10, Y: 42}, {X: 20, Y: 42},
			},
			expected: Domain{MinX: 10, MaxX: 20, MinY: 42, MaxY: 43, SpanX: 10, SpanY: 1},
		},
		{
			name: "single sample gets unit spans on both axes",
			samples: []Sample{
				{X: 5, Y: 7},
			},
			expected: Domain{MinX: 5, MaxX: 5, MinY: 7, MaxY: 8, SpanX: 1, SpanY: 1},
		},
		{
			name: "invalid samples ignored",
			samples: []Sample{
				{X: 10, Y: 100},
				{X: math.NaN(), Y: 999},
				{X: 20, Y: 200},
			},
			expected: Domain{MinX: 10, MaxX: 20, MinY: 100, MaxY: 200, SpanX: 10, SpanY: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDomain(tt.samples, tt.lines)
			if d != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, d)
			}
			if d.SpanX == 0 || d.SpanY == 0 {
				t.Error("spans must never be zero")
			}
		})
	}
}
