package chart

import (
	"math"
	"testing"
)

func TestSanitizeSamples(t *testing.T) {
	tests := []struct {
		name     string
		raw      []Sample
		expected []Sample
	}{
		{
			name:     "nil input",
			raw:      nil,
			expected: []Sample{},
		},
		{
			name:     "empty input",
			raw:      []Sample{},
			expected: []Sample{},
		},
		{
			name: "all valid, order preserved",
			raw: []Sample{
				{X: 3, Y: 30}, {X: 1, Y: 10}, {X: 2, Y: 20},
			},
			expected: []Sample{
				{X: 3, Y: 30}, {X: 1, Y: 10}, {X: 2, Y: 20},
			},
		},
		{
			name: "drops NaN and Inf",
			raw: []Sample{
				{X: 1, Y: 10},
				{X: math.NaN(), Y: 20},
				{X: 3, Y: math.NaN()},
				{X: 4, Y: math.Inf(1)},
				{X: math.Inf(-1), Y: 50},
				{X: 6, Y: 60},
			},
			expected: []Sample{
				{X: 1, Y: 10}, {X: 6, Y: 60},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeSamples(tt.raw)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d samples, got %d", len(tt.expected), len(result))
			}
			for i, s := range result {
				if s != tt.expected[i] {
					t.Errorf("sample %d: expected %+v, got %+v", i, tt.expected[i], s)
				}
			}
		})
	}
}

func TestFindReferenceLine(t *testing.T) {
	lines := []ReferenceLine{
		{Y: 180, Label: "Dry"},
		{Y: 420, Label: "Max"},
		{Y: 260, Label: "Thresh", Dash: "4 2"},
	}

	y, ok := FindReferenceLine(lines, "thresh")
	if !ok {
		t.Fatal("expected to find threshold line case-insensitively")
	}
	if y != 260 {
		t.Errorf("expected y=260, got %v", y)
	}

	if _, ok := FindReferenceLine(lines, "nope"); ok {
		t.Error("expected no match for unknown label")
	}

	if _, ok := FindReferenceLine(nil, "Thresh"); ok {
		t.Error("expected no match on empty line set")
	}
}
