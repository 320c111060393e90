package chart

import (
	"fmt"
	"strings"
)

// TooltipParams carries the pixel constants for tooltip layout. The engine
// measures text with an approximate per-character width rather than real
// font metrics; the host converts the resulting box to rendered pixels.
type TooltipParams struct {
	CharWidth  float64 // approximate width of one character
	LineHeight float64
	PadY       float64 // vertical padding above and below the text block
	MinWidth   float64
	MaxWidth   float64
	Gap        float64 // offset between the anchor point and the box
}

// DefaultTooltipParams returns the layout constants used by the dashboard.
func DefaultTooltipParams() TooltipParams {
	return TooltipParams{
		CharWidth:  6.2,
		LineHeight: 13,
		PadY:       6,
		MinWidth:   70,
		MaxWidth:   170,
		Gap:        10,
	}
}

// Placement selects how the tooltip box is positioned relative to the
// hovered point.
type Placement int

const (
	// PlaceSide offsets the box horizontally from the point, preferring the
	// right side and flipping left when it would overflow the plot. Default.
	PlaceSide Placement = iota
	// PlaceBelow centers the box under the point, flipping above when it
	// would overflow the plot's bottom edge.
	PlaceBelow
)

// TooltipBox is a fully laid-out tooltip: wrapped text lines plus a box in
// the same coordinate space as the mapper's viewport. It is derived on
// every hover update and never persisted.
type TooltipBox struct {
	Lines  []string `json:"lines"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
}

// WrapText greedily packs the words of one line into lines of at most
// maxWidth pixels at charWidth per character. A single token wider than the
// budget is hard-split into fixed-width chunks rather than overflowing.
func WrapText(text string, maxWidth, charWidth float64) []string {
	budget := int(maxWidth / charWidth)
	if budget < 1 {
		budget = 1
	}

	var lines []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > budget {
			flush()
			lines = append(lines, word[:budget])
			word = word[budget:]
		}
		if word == "" {
			continue
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= budget:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			flush()
			cur.WriteString(word)
		}
	}
	flush()

	return lines
}

// wrapLines wraps each input line independently and concatenates the
// results.
func wrapLines(lines []string, p TooltipParams) []string {
	var out []string
	for _, l := range lines {
		out = append(out, WrapText(l, p.MaxWidth, p.CharWidth)...)
	}
	return out
}

// LayoutTooltip word-wraps the text lines, sizes the box, and positions it
// inside the plot rectangle so that it never overflows the plot bounds,
// flipping sides or below-vs-above as needed. The anchor is the hovered
// point in viewport coordinates.
func LayoutTooltip(rect PlotRect, anchorX, anchorY float64, lines []string, mode Placement, p TooltipParams) TooltipBox {
	wrapped := wrapLines(lines, p)

	longest := 0
	for _, l := range wrapped {
		if len(l) > longest {
			longest = len(l)
		}
	}
	width := clamp(float64(longest)*p.CharWidth, p.MinWidth, p.MaxWidth)
	height := float64(len(wrapped))*p.LineHeight + 2*p.PadY

	var x, y float64
	switch mode {
	case PlaceBelow:
		x = clamp(anchorX-width/2, rect.Left, rect.Right()-width)
		y = anchorY + p.Gap
		if y+height > rect.Bottom() {
			y = anchorY - p.Gap - height
		}
		if y < rect.Top {
			y = rect.Top
		}
	default: // PlaceSide
		x = anchorX + p.Gap
		if x+width > rect.Right() {
			x = anchorX - p.Gap - width
		}
		if x < rect.Left {
			x = rect.Left
		}
		y = clamp(anchorY-height/2, rect.Top, rect.Bottom()-height)
	}

	return TooltipBox{
		Lines:  wrapped,
		Width:  width,
		Height: height,
		X:      x,
		Y:      y,
	}
}

// SampleLines formats a hovered sample into the tooltip's text lines.
func SampleLines(s Sample, locale DateLocale, note string) []string {
	lines := []string{
		locale.Timestamp(int64(s.X)),
		fmt.Sprintf("Weight: %.0f g", s.Y),
	}
	if note != "" {
		lines = append(lines, note)
	}
	return lines
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Box wider/taller than the plot: pin to the near edge.
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
