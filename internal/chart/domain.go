package chart

// Domain is the logical (timestamp, weight) extent of the chart data.
// Spans are guaranteed non-zero so downstream division is always safe.
type Domain struct {
	MinX, MaxX float64
	MinY, MaxY float64
	SpanX      float64
	SpanY      float64
}

// ComputeDomain derives the data domain from a sanitized series and the
// reference lines. The x-domain comes from the samples alone; the y-domain
// is the union of sample values and finite reference-line values.
//
// Degenerate inputs never produce a zero-width domain: an empty series maps
// to the unit x-interval, and a flat (or absent) y-range is widened to a
// unit span.
func ComputeDomain(samples []Sample, lines []ReferenceLine) Domain {
	d := Domain{MinX: 0, MaxX: 1}

	first := true
	for _, s := range samples {
		if !s.Valid() {
			continue
		}
		if first {
			d.MinX, d.MaxX = s.X, s.X
			d.MinY, d.MaxY = s.Y, s.Y
			first = false
			continue
		}
		if s.X < d.MinX {
			d.MinX = s.X
		}
		if s.X > d.MaxX {
			d.MaxX = s.X
		}
		if s.Y < d.MinY {
			d.MinY = s.Y
		}
		if s.Y > d.MaxY {
			d.MaxY = s.Y
		}
	}

	for _, l := range lines {
		if !isFinite(l.Y) {
			continue
		}
		if first {
			d.MinY, d.MaxY = l.Y, l.Y
			first = false
			continue
		}
		if l.Y < d.MinY {
			d.MinY = l.Y
		}
		if l.Y > d.MaxY {
			d.MaxY = l.Y
		}
	}

	if !isFinite(d.MinY) || !isFinite(d.MaxY) || d.MaxY == d.MinY {
		// Fabricate a unit span around whatever we have.
		if !isFinite(d.MinY) {
			d.MinY = 0
		}
		d.MaxY = d.MinY + 1
	}

	d.SpanX = d.MaxX - d.MinX
	if d.SpanX == 0 {
		d.SpanX = 1
	}
	d.SpanY = d.MaxY - d.MinY
	if d.SpanY == 0 {
		d.SpanY = 1
	}

	return d
}
