package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"gonum.org/v1/gonum/stat"

	"github.com/leafgauge/leafgauge/internal/chart"
	"github.com/leafgauge/leafgauge/internal/watering"
)

// plantRecord is the slice of the plants table the report needs
type plantRecord struct {
	ID                           string
	Name                         string
	MinDryWeightG                sql.NullInt64
	MaxWaterWeightG              sql.NullInt64
	RecommendedWaterThresholdPct sql.NullInt64
}

func main() {
	var (
		dbHost   = flag.String("db-host", "localhost", "Database host")
		dbPort   = flag.Int("db-port", 5432, "Database port")
		dbUser   = flag.String("db-user", "postgres", "Database user")
		dbPass   = flag.String("db-pass", "", "Database password")
		dbName   = flag.String("db-name", "leafgauge", "Database name")
		plant    = flag.String("plant", "", "Plant name to report on (required)")
		days     = flag.Int("days", 90, "Number of days of history to analyze")
		locale   = flag.String("locale", "day-first", "Date label format: day-first or month-first")
		csvPath  = flag.String("csv", "", "Optional CSV output file path for the weight series")
		deltaPct = flag.Float64("delta-fraction", 0.20, "Fraction of water capacity a rise must exceed to count as a watering peak")
	)
	flag.Parse()

	if *plant == "" {
		fmt.Fprintln(os.Stderr, "the -plant flag is required")
		flag.Usage()
		os.Exit(1)
	}

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*dbHost, *dbPort, *dbUser, *dbPass, *dbName)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	rec, err := fetchPlant(db, *plant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error fetching plant %q: %v\n", *plant, err)
		os.Exit(1)
	}

	since := time.Now().AddDate(0, 0, -*days)
	history, err := fetchHistory(db, rec.ID, since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error fetching measurements: %v\n", err)
		os.Exit(1)
	}
	if len(history) == 0 {
		fmt.Printf("No measurements recorded for %q in the last %d days.\n", rec.Name, *days)
		return
	}

	printReport(rec, history, *days, *deltaPct, chart.ParseDateLocale(*locale))

	if *csvPath != "" {
		if err := writeSeriesCSV(*csvPath, history); err != nil {
			fmt.Fprintf(os.Stderr, "error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWeight series written to %s\n", *csvPath)
	}
}

func fetchPlant(db *sql.DB, name string) (plantRecord, error) {
	var rec plantRecord
	err := db.QueryRow(`
		SELECT id, name, min_dry_weight_g, max_water_weight_g, recommended_water_threshold_pct
		FROM plants WHERE name = $1`, name).
		Scan(&rec.ID, &rec.Name, &rec.MinDryWeightG, &rec.MaxWaterWeightG, &rec.RecommendedWaterThresholdPct)
	return rec, err
}

func fetchHistory(db *sql.DB, plantID string, since time.Time) ([]watering.Measurement, error) {
	rows, err := db.Query(`
		SELECT measured_at, measured_weight_g, last_dry_weight_g, last_wet_weight_g,
		       water_added_g, water_loss_day_g, repotting, note
		FROM measurements
		WHERE plant_id = $1 AND measured_at >= $2
		ORDER BY measured_at ASC`, plantID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []watering.Measurement
	for rows.Next() {
		var m watering.Measurement
		var measured, dry, wet, added, lossDay sql.NullInt64
		var note sql.NullString

		if err := rows.Scan(&m.MeasuredAt, &measured, &dry, &wet, &added, &lossDay, &m.Repotting, &note); err != nil {
			return nil, err
		}
		m.MeasuredWeightG = nullableInt(measured)
		m.LastDryWeightG = nullableInt(dry)
		m.LastWetWeightG = nullableInt(wet)
		m.WaterAddedG = nullableInt(added)
		m.WaterLossDayG = nullableInt(lossDay)
		if note.Valid {
			m.Note = note.String
		}
		history = append(history, m)
	}
	return history, rows.Err()
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func printReport(rec plantRecord, history []watering.Measurement, days int, deltaFraction float64, locale chart.DateLocale) {
	fmt.Printf("Watering report for %q (last %d days, %d measurements)\n", rec.Name, days, len(history))
	fmt.Println("--------------------------------------------------------------")

	ex := watering.ComputeExtremes(history)
	if ex.MinDryWeightG != nil {
		fmt.Printf("Lowest dry weight:        %d g\n", *ex.MinDryWeightG)
	}
	if ex.MaxWaterAddedG != nil {
		fmt.Printf("Largest watering:         %d g\n", *ex.MaxWaterAddedG)
	}

	if freq, events, ok := watering.FrequencyDays(history); ok {
		fmt.Printf("Watering frequency:       every %d days (%d events)\n", freq, events)
	} else {
		fmt.Println("Watering frequency:       not enough watering events yet")
	}

	printLossStats(history)
	printPeaks(rec, history, deltaFraction, locale)
	printCalibration(rec, history)
}

// printLossStats summarizes the per-day water loss across all weighings
func printLossStats(history []watering.Measurement) {
	var losses []float64
	for i, m := range history {
		loss := watering.ComputeLoss(history[:i], m)
		if loss.DayG != nil {
			losses = append(losses, float64(*loss.DayG))
		}
	}
	if len(losses) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(losses, nil)
	fmt.Printf("Daily water loss:         %.1f g mean, %.1f g stddev (%d weighings)\n", mean, std, len(losses))
}

func printPeaks(rec plantRecord, history []watering.Measurement, deltaFraction float64, locale chart.DateLocale) {
	if !rec.MaxWaterWeightG.Valid {
		return
	}

	var samples []chart.Sample
	for _, m := range history {
		switch {
		case m.MeasuredWeightG != nil:
			samples = append(samples, chart.Sample{X: float64(m.MeasuredAt.UnixMilli()), Y: float64(*m.MeasuredWeightG)})
		case m.LastWetWeightG != nil:
			samples = append(samples, chart.Sample{X: float64(m.MeasuredAt.UnixMilli()), Y: float64(*m.LastWetWeightG)})
		}
	}

	peaks := chart.DetectPeaks(samples, float64(rec.MaxWaterWeightG.Int64), deltaFraction, locale)
	if len(peaks) == 0 {
		return
	}

	fmt.Printf("\nDetected watering peaks (%d):\n", len(peaks))
	for _, p := range peaks {
		if p.DaysSince > 0 {
			fmt.Printf("  %s  %.0f g  (+%d days after previous)\n", p.Label, p.Y, p.DaysSince)
		} else {
			fmt.Printf("  %s  %.0f g\n", p.Label, p.Y)
		}
	}
}

func printCalibration(rec plantRecord, history []watering.Measurement) {
	minDry, maxWater := 0, 0
	if rec.MinDryWeightG.Valid {
		minDry = int(rec.MinDryWeightG.Int64)
	}
	if rec.MaxWaterWeightG.Valid {
		maxWater = int(rec.MaxWaterWeightG.Int64)
	}

	report := watering.Calibrate(history, minDry, maxWater)
	if report == nil {
		fmt.Println("\nCalibration: all waterings reached full saturation.")
		return
	}

	fmt.Printf("\nUnder-watering events (%d, mean %.1f%%, worst %.1f%%):\n",
		len(report.Items), report.MeanUnderPct, report.MaxUnderPct)
	for _, item := range report.Items {
		fmt.Printf("  %s  %d g added, %d g short (%.1f%% under)\n",
			item.MeasuredAt.Format("2006-01-02"), item.WaterAddedG, item.UnderG, item.UnderPct)
	}
}

func writeSeriesCSV(path string, history []watering.Measurement) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"measured_at", "weight_g", "watering"}); err != nil {
		return err
	}
	for _, m := range history {
		var weight int
		switch {
		case m.MeasuredWeightG != nil:
			weight = *m.MeasuredWeightG
		case m.LastWetWeightG != nil:
			weight = *m.LastWetWeightG
		default:
			continue
		}
		row := []string{
			m.MeasuredAt.Format(time.RFC3339),
			fmt.Sprintf("%d", weight),
			fmt.Sprintf("%t", watering.IsWateringEvent(m)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
