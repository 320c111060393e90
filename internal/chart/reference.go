package chart

import "strings"

// ReferenceLine is a horizontal guide drawn across the chart, e.g. the dry
// weight, the saturated weight, or the recommended watering threshold.
// Lines only widen the y-domain; they never contribute to the x-domain.
type ReferenceLine struct {
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// ThresholdLabel names the reference line whose value feeds the
// threshold-crossing detector.
const ThresholdLabel = "Thresh"

// FindReferenceLine returns the y-value of the first line whose label
// matches, case-insensitively. The second return is false when no such
// line exists.
func FindReferenceLine(lines []ReferenceLine, label string) (float64, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.Label, label) {
			return l.Y, true
		}
	}
	return 0, false
}
