package restserver

import (
	"time"

	"github.com/leafgauge/leafgauge/internal/chart"
	"github.com/leafgauge/leafgauge/internal/watering"
)

// PlantRequest is the payload for creating or updating a plant
type PlantRequest struct {
	Name                         string  `json:"name"`
	Species                      string  `json:"species,omitempty"`
	Notes                        string  `json:"notes,omitempty"`
	LocationID                   *string `json:"location_id,omitempty"`
	MinDryWeightG                *int    `json:"min_dry_weight_g,omitempty"`
	MaxWaterWeightG              *int    `json:"max_water_weight_g,omitempty"`
	RecommendedWaterThresholdPct *int    `json:"recommended_water_threshold_pct,omitempty"`
	Archived                     *bool   `json:"archived,omitempty"`
}

// LocationRequest is the payload for creating or updating a location
type LocationRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// MeasurementRequest is the payload for recording a weighing or watering
type MeasurementRequest struct {
	MeasuredAt      time.Time `json:"measured_at"`
	MeasuredWeightG *int      `json:"measured_weight_g,omitempty"`
	LastDryWeightG  *int      `json:"last_dry_weight_g,omitempty"`
	LastWetWeightG  *int      `json:"last_wet_weight_g,omitempty"`
	WaterAddedG     *int      `json:"water_added_g,omitempty"`
	Repotting       bool      `json:"repotting,omitempty"`
	Note            string    `json:"note,omitempty"`
}

// ChartDomain mirrors the chart data domain for JSON output
type ChartDomain struct {
	MinX  float64 `json:"min_x"`
	MaxX  float64 `json:"max_x"`
	MinY  float64 `json:"min_y"`
	MaxY  float64 `json:"max_y"`
	SpanX float64 `json:"span_x"`
	SpanY float64 `json:"span_y"`
}

// ChartPeak is a detected watering peak together with its projected
// viewport position and tone classification
type ChartPeak struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	SX        float64 `json:"sx"`
	SY        float64 `json:"sy"`
	Label     string  `json:"label"`
	DaysSince int     `json:"days_since"`
	Tone      string  `json:"tone"`
}

// ChartCrossing is the first threshold crossing, projected for rendering
type ChartCrossing struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	SX        float64 `json:"sx"`
	SY        float64 `json:"sy"`
	Index     int     `json:"index"`
	DaysSince int     `json:"days_since"`
}

// ChartResponse is a fully assembled chart for one plant
type ChartResponse struct {
	PlantID        string                `json:"plant_id"`
	Locale         string                `json:"locale"`
	Rect           chart.PlotRect        `json:"rect"`
	Domain         ChartDomain           `json:"domain"`
	Samples        []chart.Sample        `json:"samples"`
	Path           []chart.Point         `json:"path"`
	ReferenceLines []chart.ReferenceLine `json:"reference_lines,omitempty"`
	Peaks          []ChartPeak           `json:"peaks,omitempty"`
	Crossing       *ChartCrossing        `json:"crossing,omitempty"`
}

// HoverResponse resolves a hover x-coordinate to the nearest sample and a
// laid-out tooltip
type HoverResponse struct {
	Index   int               `json:"index"`
	Sample  *chart.Sample     `json:"sample,omitempty"`
	Tooltip *chart.TooltipBox `json:"tooltip,omitempty"`
}

// FrequencyResponse reports the estimated watering cadence for a plant
type FrequencyResponse struct {
	PlantID string `json:"plant_id"`
	Days    int    `json:"days"`
	Events  int    `json:"events"`
	Known   bool   `json:"known"`
}

// CalibrationResponse reports under-watering events for a plant
type CalibrationResponse struct {
	PlantID string                      `json:"plant_id"`
	Report  *watering.CalibrationReport `json:"report,omitempty"`
}

// HealthResponse reports service and database liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
