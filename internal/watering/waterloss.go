package watering

// Loss holds the water-loss metrics for one weighing. A watering event
// carries no loss values at all; the fields stay nil.
type Loss struct {
	DayG            *int
	DayPct          *float64
	TotalG          *int
	TotalPct        *float64
	IsWateringEvent bool
}

// ComputeLoss calculates daily and since-last-watering water loss for the
// measurement cur, given the plant's earlier history in ascending order.
//
// The daily baseline is the previous measured weight when one exists,
// otherwise the last recorded wet weight; negative differences clamp to
// zero. Percentages are relative to the water added at the last watering
// event, falling back to the wet weight when that amount is unknown. The
// total is the sum of daily losses accumulated since the last watering.
func ComputeLoss(history []Measurement, cur Measurement) Loss {
	var out Loss

	if cur.MeasuredWeightG == nil {
		out.IsWateringEvent = true
		return out
	}
	measured := *cur.MeasuredWeightG

	lastWatering := LastWateringEvent(history)

	// Daily loss against the previous weighing, or the wet weight right
	// after the last watering.
	baseline := prevMeasuredWeight(history)
	if baseline == nil && lastWatering != nil {
		baseline = lastWatering.LastWetWeightG
	}
	if baseline == nil {
		baseline = cur.LastWetWeightG
	}

	if baseline != nil {
		day := *baseline - measured
		if day < 0 {
			day = 0
		}
		out.DayG = &day

		if pct, ok := lossPct(day, lastWatering, baseline); ok {
			out.DayPct = &pct
		}
	}

	// Total loss since the last watering event: the daily losses of the
	// intermediate weighings plus the current one. Each row's stored daily
	// loss is preferred; rows without one are reconstructed against their
	// own previous weighing so the sum telescopes to wet minus current.
	if lastWatering != nil {
		total := 0
		prev := lastWatering.LastWetWeightG
		for _, m := range history {
			if !m.MeasuredAt.After(lastWatering.MeasuredAt) {
				continue
			}
			if m.MeasuredWeightG == nil {
				continue
			}
			d := 0
			switch {
			case m.WaterLossDayG != nil:
				d = *m.WaterLossDayG
			case prev != nil:
				d = *prev - *m.MeasuredWeightG
			}
			if d > 0 {
				total += d
			}
			prev = m.MeasuredWeightG
		}
		if out.DayG != nil {
			total += *out.DayG
		}
		out.TotalG = &total

		if lastWatering.WaterAddedG != nil && *lastWatering.WaterAddedG > 0 {
			pct := round2(float64(total) / float64(*lastWatering.WaterAddedG) * 100)
			out.TotalPct = &pct
		}
	}

	return out
}

// RecomputeLosses rebuilds the loss metrics for every measurement in an
// ascending history, as after an edit or delete invalidates the stored
// columns. Each row's freshly computed daily loss feeds the totals of the
// rows after it.
func RecomputeLosses(history []Measurement) []Loss {
	work := make([]Measurement, len(history))
	copy(work, history)

	out := make([]Loss, len(work))
	for i := range work {
		loss := ComputeLoss(work[:i], work[i])
		work[i].WaterLossDayG = loss.DayG
		out[i] = loss
	}
	return out
}

// prevMeasuredWeight returns the latest measured weight in the history.
func prevMeasuredWeight(history []Measurement) *int {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].MeasuredWeightG != nil {
			return history[i].MeasuredWeightG
		}
	}
	return nil
}

func lossPct(lossG int, lastWatering *Measurement, baseline *int) (float64, bool) {
	if lastWatering != nil && lastWatering.WaterAddedG != nil && *lastWatering.WaterAddedG > 0 {
		return round2(float64(lossG) / float64(*lastWatering.WaterAddedG) * 100), true
	}
	if baseline != nil && *baseline > 0 {
		return round2(float64(lossG) / float64(*baseline) * 100), true
	}
	return 0, false
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
