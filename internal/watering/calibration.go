package watering

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// UnderWatering describes one watering event that did not saturate the
// substrate: less water went in than the plant is known to absorb.
type UnderWatering struct {
	MeasuredAt     time.Time `json:"measured_at"`
	WaterAddedG    int       `json:"water_added_g"`
	LastWetWeightG *int      `json:"last_wet_weight_g,omitempty"`
	TargetWeightG  int       `json:"target_weight_g"`
	UnderG         int       `json:"under_g"`
	UnderPct       float64   `json:"under_pct"`
}

// CalibrationReport aggregates a plant's under-watering events.
type CalibrationReport struct {
	Items        []UnderWatering `json:"items"`
	MeanUnderPct float64         `json:"mean_under_pct"`
	MaxUnderPct  float64         `json:"max_under_pct"`
}

// Calibrate examines the watering events since the last repotting and
// reports those that fell short of full saturation. minDryWeightG and
// maxWaterWeightG are the plant's tracked extremes; their sum is the
// target weight of a fully watered pot. UnderPct is relative to the
// absorbable water capacity.
//
// Returns nil when the capacity is unknown or nothing fell short.
func Calibrate(history []Measurement, minDryWeightG, maxWaterWeightG int) *CalibrationReport {
	if maxWaterWeightG <= 0 {
		return nil
	}
	target := minDryWeightG + maxWaterWeightG

	var items []UnderWatering
	var pcts []float64
	for _, m := range SinceLastRepotting(history) {
		if !IsWateringEvent(m) {
			continue
		}
		under := maxWaterWeightG - *m.WaterAddedG
		if under <= 0 {
			continue
		}
		pct := round2(float64(under) / float64(maxWaterWeightG) * 100)
		items = append(items, UnderWatering{
			MeasuredAt:     m.MeasuredAt,
			WaterAddedG:    *m.WaterAddedG,
			LastWetWeightG: m.LastWetWeightG,
			TargetWeightG:  target,
			UnderG:         under,
			UnderPct:       pct,
		})
		pcts = append(pcts, pct)
	}
	if len(items) == 0 {
		return nil
	}

	max := pcts[0]
	for _, p := range pcts[1:] {
		if p > max {
			max = p
		}
	}

	return &CalibrationReport{
		Items:        items,
		MeanUnderPct: round2(stat.Mean(pcts, nil)),
		MaxUnderPct:  max,
	}
}
