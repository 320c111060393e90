package chart

// PlotRect is the plot area inside the viewport, in viewport units.
type PlotRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x-coordinate of the plot's right edge.
func (r PlotRect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y-coordinate of the plot's bottom edge.
func (r PlotRect) Bottom() float64 { return r.Top + r.Height }

// Point is a projected viewport coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mapper projects domain coordinates onto a plot rectangle. It holds no
// state beyond its inputs and must be rebuilt whenever the rectangle or
// domain changes (e.g. on container resize); rebuilding is always safe.
type Mapper struct {
	Rect   PlotRect
	Domain Domain
}

// NewMapper builds a Mapper for the given plot rectangle and domain.
func NewMapper(rect PlotRect, d Domain) Mapper {
	return Mapper{Rect: rect, Domain: d}
}

// SX maps a domain x-value to a viewport x-coordinate.
func (m Mapper) SX(x float64) float64 {
	return m.Rect.Left + ((x-m.Domain.MinX)/m.Domain.SpanX)*m.Rect.Width
}

// SY maps a domain y-value to a viewport y-coordinate. The axis is
// inverted: larger values plot higher.
func (m Mapper) SY(y float64) float64 {
	return m.Rect.Top + (1-(y-m.Domain.MinY)/m.Domain.SpanY)*m.Rect.Height
}

// DomainX inverts SX, recovering the domain value for a viewport
// x-coordinate. Used to translate pointer positions into data space.
func (m Mapper) DomainX(sx float64) float64 {
	return m.Domain.MinX + ((sx-m.Rect.Left)/m.Rect.Width)*m.Domain.SpanX
}

// DomainY inverts SY.
func (m Mapper) DomainY(sy float64) float64 {
	return m.Domain.MinY + (1-(sy-m.Rect.Top)/m.Rect.Height)*m.Domain.SpanY
}

// PathPoints projects a series into viewport coordinates for rendering as
// a polyline. Invalid samples are skipped in place.
func (m Mapper) PathPoints(samples []Sample) []Point {
	pts := make([]Point, 0, len(samples))
	for _, s := range samples {
		if !s.Valid() {
			continue
		}
		pts = append(pts, Point{X: m.SX(s.X), Y: m.SY(s.Y)})
	}
	return pts
}
