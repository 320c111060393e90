package chart

import "math"

// NearestIndex returns the index of the sample closest to domainX, or -1
// for an empty series. The scan replaces the best candidate only on a
// strictly smaller distance, so ties resolve to the earlier index.
func NearestIndex(samples []Sample, domainX float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range samples {
		if !s.Valid() {
			continue
		}
		d := math.Abs(s.X - domainX)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// HoverState is the chart's single piece of mutable UI state: the index of
// the currently hovered sample. It is owned by the view layer and written
// from one place only; the geometry functions stay pure and take the
// current index as a parameter.
type HoverState struct {
	index int
}

// NewHoverState returns a cleared hover state.
func NewHoverState() *HoverState {
	return &HoverState{index: -1}
}

// SetHoverIndex records the hovered sample index. A pointer-move event that
// supersedes an earlier one simply overwrites it.
func (h *HoverState) SetHoverIndex(i int) {
	h.index = i
}

// ClearHover resets the state on pointer-leave.
func (h *HoverState) ClearHover() {
	h.index = -1
}

// HoverIndex returns the hovered index, or -1 when not hovering.
func (h *HoverState) HoverIndex() int {
	return h.index
}

// Hovering reports whether a sample is currently hovered.
func (h *HoverState) Hovering() bool {
	return h.index >= 0
}
