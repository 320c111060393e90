package watering

// Extremes tracks the observed dry-weight floor and watering ceiling for a
// plant since its last repotting. MinDryWeightG approximates the pot at its
// driest; MaxWaterAddedG approximates how much water the substrate can
// absorb, which the chart uses as its capacity constant.
type Extremes struct {
	MinDryWeightG  *int
	MaxWaterAddedG *int
}

// ComputeExtremes scans the measurements since the last repotting. The
// values feed the plant's stored minima/maxima whenever a measurement is
// added, changed or removed; recomputing from scratch keeps edits in the
// middle of the history honest.
func ComputeExtremes(history []Measurement) Extremes {
	var e Extremes
	for _, m := range SinceLastRepotting(history) {
		if m.MeasuredWeightG != nil {
			if e.MinDryWeightG == nil || *m.MeasuredWeightG < *e.MinDryWeightG {
				v := *m.MeasuredWeightG
				e.MinDryWeightG = &v
			}
		}
		if m.WaterAddedG != nil {
			if e.MaxWaterAddedG == nil || *m.WaterAddedG > *e.MaxWaterAddedG {
				v := *m.WaterAddedG
				e.MaxWaterAddedG = &v
			}
		}
	}
	return e
}
