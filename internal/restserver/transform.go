package restserver

import (
	"github.com/leafgauge/leafgauge/internal/chart"
	"github.com/leafgauge/leafgauge/internal/database"
	"github.com/leafgauge/leafgauge/internal/watering"
	"github.com/leafgauge/leafgauge/pkg/config"
)

// effectiveWeight returns the weight a measurement contributes to the chart:
// the measured weight for a weighing, the wet weight for a watering event
func effectiveWeight(m database.Measurement) (int, bool) {
	if m.MeasuredWeightG != nil {
		return *m.MeasuredWeightG, true
	}
	if m.LastWetWeightG != nil {
		return *m.LastWetWeightG, true
	}
	return 0, false
}

// chartSamples converts measurement rows (ascending by time) to chart
// samples, collapsing multiple entries on the same calendar day to the
// latest one
func chartSamples(rows []database.Measurement) []chart.Sample {
	var samples []chart.Sample
	for _, m := range rows {
		w, ok := effectiveWeight(m)
		if !ok {
			continue
		}
		s := chart.Sample{X: float64(m.MeasuredAt.UnixMilli()), Y: float64(w)}
		if n := len(samples); n > 0 && chart.SameCalendarDay(int64(samples[n-1].X), m.MeasuredAt.UnixMilli()) {
			samples[n-1] = s
			continue
		}
		samples = append(samples, s)
	}
	return chart.SanitizeSamples(samples)
}

// wateringHistory converts measurement rows to the analytics representation
func wateringHistory(rows []database.Measurement) []watering.Measurement {
	history := make([]watering.Measurement, 0, len(rows))
	for _, m := range rows {
		history = append(history, watering.Measurement{
			MeasuredAt:      m.MeasuredAt,
			MeasuredWeightG: m.MeasuredWeightG,
			LastDryWeightG:  m.LastDryWeightG,
			LastWetWeightG:  m.LastWetWeightG,
			WaterAddedG:     m.WaterAddedG,
			WaterLossDayG:   m.WaterLossDayG,
			Repotting:       m.Repotting,
			Note:            m.Note,
		})
	}
	return history
}

// referenceLines derives the horizontal guides from a plant's calibration:
// the dry weight, the saturated weight, and the watering threshold
func referenceLines(plant database.Plant) []chart.ReferenceLine {
	var lines []chart.ReferenceLine
	if plant.MinDryWeightG == nil {
		return lines
	}
	dry := float64(*plant.MinDryWeightG)
	lines = append(lines, chart.ReferenceLine{Y: dry, Label: "Dry", Color: "#c2855a"})

	if plant.MaxWaterWeightG == nil {
		return lines
	}
	capacity := float64(*plant.MaxWaterWeightG)
	lines = append(lines, chart.ReferenceLine{Y: dry + capacity, Label: "Max", Color: "#5a9bc2"})

	if plant.RecommendedWaterThresholdPct != nil {
		threshold := dry + capacity*float64(*plant.RecommendedWaterThresholdPct)/100
		lines = append(lines, chart.ReferenceLine{
			Y:     threshold,
			Label: chart.ThresholdLabel,
			Color: "#c25a5a",
			Dash:  "4 2",
		})
	}
	return lines
}

// plantCapacity returns the absorbable water capacity in grams, if known
func plantCapacity(plant database.Plant) float64 {
	if plant.MaxWaterWeightG == nil {
		return 0
	}
	return float64(*plant.MaxWaterWeightG)
}

// tooltipParams resolves the tooltip constants, applying any configured
// overrides on top of the defaults
func tooltipParams(cfg config.ChartData) chart.TooltipParams {
	p := chart.DefaultTooltipParams()
	if cfg.Tooltip == nil {
		return p
	}
	if cfg.Tooltip.CharWidth > 0 {
		p.CharWidth = cfg.Tooltip.CharWidth
	}
	if cfg.Tooltip.LineHeight > 0 {
		p.LineHeight = cfg.Tooltip.LineHeight
	}
	if cfg.Tooltip.PadY > 0 {
		p.PadY = cfg.Tooltip.PadY
	}
	if cfg.Tooltip.MinWidth > 0 {
		p.MinWidth = cfg.Tooltip.MinWidth
	}
	if cfg.Tooltip.MaxWidth > 0 {
		p.MaxWidth = cfg.Tooltip.MaxWidth
	}
	if cfg.Tooltip.Gap > 0 {
		p.Gap = cfg.Tooltip.Gap
	}
	return p
}

// buildChart assembles the full chart response for one plant: sanitized
// samples, domain, projected path, reference lines, watering peaks with
// tone, and the first threshold crossing (suppressed when it falls on the
// same calendar day as a peak)
func buildChart(plant database.Plant, rows []database.Measurement, rect chart.PlotRect, cfg config.ChartData) ChartResponse {
	locale := chart.ParseDateLocale(cfg.DateLocale)
	samples := chartSamples(rows)
	lines := referenceLines(plant)
	domain := chart.ComputeDomain(samples, lines)
	mapper := chart.NewMapper(rect, domain)

	resp := ChartResponse{
		PlantID: plant.ID,
		Locale:  string(locale),
		Rect:    rect,
		Domain: ChartDomain{
			MinX:  domain.MinX,
			MaxX:  domain.MaxX,
			MinY:  domain.MinY,
			MaxY:  domain.MaxY,
			SpanX: domain.SpanX,
			SpanY: domain.SpanY,
		},
		Samples:        samples,
		Path:           mapper.PathPoints(samples),
		ReferenceLines: lines,
	}

	capacity := plantCapacity(plant)
	peaks := chart.DetectPeaks(samples, capacity, cfg.PeakDeltaFraction, locale)
	thresholdY, haveThreshold := chart.FindReferenceLine(lines, chart.ThresholdLabel)

	for _, p := range peaks {
		resp.Peaks = append(resp.Peaks, ChartPeak{
			X:         p.X,
			Y:         p.Y,
			SX:        mapper.SX(p.X),
			SY:        mapper.SY(p.Y),
			Label:     p.Label,
			DaysSince: p.DaysSince,
			Tone:      chart.ClassifyPeak(p, thresholdY, haveThreshold, capacity, cfg.FavorableBand),
		})
	}

	crossing := chart.DetectFirstBelow(samples, thresholdY, haveThreshold)
	if crossing != nil && !chart.CrossingOnPeakDay(crossing, peaks) {
		resp.Crossing = &ChartCrossing{
			X:         crossing.X,
			Y:         crossing.Y,
			SX:        mapper.SX(crossing.X),
			SY:        mapper.SY(crossing.Y),
			Index:     crossing.Index,
			DaysSince: chart.CrossingDaysSince(crossing, peaks, samples),
		}
	}

	return resp
}

// buildHover resolves a hover at domain x to the nearest sample and lays
// out its tooltip inside the plot rectangle
func buildHover(plant database.Plant, rows []database.Measurement, rect chart.PlotRect, cfg config.ChartData, x float64, mode chart.Placement) HoverResponse {
	samples := chartSamples(rows)
	idx := chart.NearestIndex(samples, x)
	if idx < 0 {
		return HoverResponse{Index: -1}
	}

	s := samples[idx]
	locale := chart.ParseDateLocale(cfg.DateLocale)
	lines := chart.SampleLines(s, locale, noteAt(rows, int64(s.X)))

	domain := chart.ComputeDomain(samples, referenceLines(plant))
	mapper := chart.NewMapper(rect, domain)
	box := chart.LayoutTooltip(rect, mapper.SX(s.X), mapper.SY(s.Y), lines, mode, tooltipParams(cfg))

	return HoverResponse{
		Index:   idx,
		Sample:  &s,
		Tooltip: &box,
	}
}

// noteAt returns the note of the measurement recorded at ts, if any
func noteAt(rows []database.Measurement, ts int64) string {
	for _, m := range rows {
		if m.MeasuredAt.UnixMilli() == ts {
			return m.Note
		}
	}
	return ""
}
