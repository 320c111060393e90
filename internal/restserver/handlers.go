package restserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/leafgauge/leafgauge/internal/chart"
	"github.com/leafgauge/leafgauge/internal/database"
	"github.com/leafgauge/leafgauge/internal/log"
	"github.com/leafgauge/leafgauge/internal/watering"
	"github.com/leafgauge/leafgauge/pkg/config"
	"github.com/leafgauge/leafgauge/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(ctrl.httpConfig.EnableCORS),
	}
}

// GetHealth reports service and database liveness
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK
	if err := h.controller.DB.Health(); err != nil {
		log.Errorf("health check: database ping failed: %v", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}
	h.formatter.WriteResponse(w, req, status, resp)
}

// GetPlants returns all plants, excluding archived ones unless
// ?include-archived=true is passed
func (h *Handlers) GetPlants(w http.ResponseWriter, req *http.Request) {
	includeArchived := req.URL.Query().Get("include-archived") == "true"
	plants, err := h.controller.DB.GetPlants(includeArchived)
	if err != nil {
		log.Errorf("error fetching plants: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching plants")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, plants)
}

// CreatePlant creates a new plant
func (h *Handlers) CreatePlant(w http.ResponseWriter, req *http.Request) {
	var body PlantRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "name is required")
		return
	}

	plant := database.Plant{
		Name:                         body.Name,
		Species:                      body.Species,
		Notes:                        body.Notes,
		LocationID:                   body.LocationID,
		MinDryWeightG:                body.MinDryWeightG,
		MaxWaterWeightG:              body.MaxWaterWeightG,
		RecommendedWaterThresholdPct: body.RecommendedWaterThresholdPct,
	}
	if err := h.controller.DB.DB.Create(&plant).Error; err != nil {
		log.Errorf("error creating plant: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error creating plant")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusCreated, plant)
}

// GetPlant returns a single plant by ID
func (h *Handlers) GetPlant(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, plant)
}

// UpdatePlant updates a plant's metadata and calibration
func (h *Handlers) UpdatePlant(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	var body PlantRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Name != "" {
		plant.Name = body.Name
	}
	plant.Species = body.Species
	plant.Notes = body.Notes
	plant.LocationID = body.LocationID
	if body.MinDryWeightG != nil {
		plant.MinDryWeightG = body.MinDryWeightG
	}
	if body.MaxWaterWeightG != nil {
		plant.MaxWaterWeightG = body.MaxWaterWeightG
	}
	if body.RecommendedWaterThresholdPct != nil {
		plant.RecommendedWaterThresholdPct = body.RecommendedWaterThresholdPct
	}
	if body.Archived != nil {
		plant.Archived = *body.Archived
	}

	if err := h.controller.DB.DB.Save(&plant).Error; err != nil {
		log.Errorf("error updating plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error updating plant")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, plant)
}

// DeletePlant deletes a plant and its measurement history
func (h *Handlers) DeletePlant(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	if err := h.controller.DB.DB.Where("plant_id = ?", plant.ID).Delete(&database.Measurement{}).Error; err != nil {
		log.Errorf("error deleting measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting plant")
		return
	}
	if err := h.controller.DB.DB.Delete(&plant).Error; err != nil {
		log.Errorf("error deleting plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting plant")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]string{"deleted": plant.ID})
}

// GetLocations returns all locations
func (h *Handlers) GetLocations(w http.ResponseWriter, req *http.Request) {
	locations, err := h.controller.DB.GetLocations()
	if err != nil {
		log.Errorf("error fetching locations: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching locations")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, locations)
}

// CreateLocation creates a new location
func (h *Handlers) CreateLocation(w http.ResponseWriter, req *http.Request) {
	var body LocationRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "name is required")
		return
	}

	location := database.Location{Name: body.Name, Notes: body.Notes}
	if err := h.controller.DB.DB.Create(&location).Error; err != nil {
		log.Errorf("error creating location: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error creating location")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusCreated, location)
}

// GetLocation returns a single location by ID
func (h *Handlers) GetLocation(w http.ResponseWriter, req *http.Request) {
	location, err := h.controller.DB.GetLocation(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "location")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, location)
}

// UpdateLocation updates a location
func (h *Handlers) UpdateLocation(w http.ResponseWriter, req *http.Request) {
	location, err := h.controller.DB.GetLocation(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "location")
		return
	}

	var body LocationRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name != "" {
		location.Name = body.Name
	}
	location.Notes = body.Notes

	if err := h.controller.DB.DB.Save(&location).Error; err != nil {
		log.Errorf("error updating location %s: %v", location.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error updating location")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, location)
}

// DeleteLocation deletes a location and detaches its plants
func (h *Handlers) DeleteLocation(w http.ResponseWriter, req *http.Request) {
	location, err := h.controller.DB.GetLocation(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "location")
		return
	}

	if err := h.controller.DB.DB.Model(&database.Plant{}).Where("location_id = ?", location.ID).Update("location_id", nil).Error; err != nil {
		log.Errorf("error detaching plants from location %s: %v", location.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting location")
		return
	}
	if err := h.controller.DB.DB.Delete(&location).Error; err != nil {
		log.Errorf("error deleting location %s: %v", location.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting location")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]string{"deleted": location.ID})
}

// GetMeasurements returns a plant's measurement history in ascending time
// order, optionally limited by ?span (e.g. 90d, 12w, 720h)
func (h *Handlers) GetMeasurements(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	since, ok := h.parseSinceParam(w, req)
	if !ok {
		return
	}

	measurements, err := h.controller.DB.GetMeasurements(plant.ID, since)
	if err != nil {
		log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching measurements")
		return
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, measurements)
}

// CreateMeasurement records a weighing, watering, or repotting for a plant.
// Water-loss metrics are computed against the prior history and stored with
// the row, and the plant's tracked extremes are refreshed
func (h *Handlers) CreateMeasurement(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	var body MeasurementRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.MeasuredAt.IsZero() {
		body.MeasuredAt = time.Now()
	}

	m := database.Measurement{
		PlantID:         plant.ID,
		MeasuredAt:      body.MeasuredAt,
		MeasuredWeightG: body.MeasuredWeightG,
		LastDryWeightG:  body.LastDryWeightG,
		LastWetWeightG:  body.LastWetWeightG,
		WaterAddedG:     body.WaterAddedG,
		Repotting:       body.Repotting,
		Note:            body.Note,
	}

	cur := watering.Measurement{
		MeasuredAt:      m.MeasuredAt,
		MeasuredWeightG: m.MeasuredWeightG,
		LastDryWeightG:  m.LastDryWeightG,
		LastWetWeightG:  m.LastWetWeightG,
		WaterAddedG:     m.WaterAddedG,
		Repotting:       m.Repotting,
		Note:            m.Note,
	}
	if m.MeasuredWeightG == nil && !watering.IsWateringEvent(cur) && !m.Repotting {
		h.formatter.WriteError(w, req, http.StatusBadRequest,
			"measurement must be a weighing, a watering (dry/wet weights plus water added), or a repotting")
		return
	}

	history, err := h.controller.DB.GetMeasurements(plant.ID, nil)
	if err != nil {
		log.Errorf("error fetching history for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error recording measurement")
		return
	}

	loss := watering.ComputeLoss(wateringHistory(history), cur)
	m.WaterLossDayG = loss.DayG
	m.WaterLossDayPct = loss.DayPct
	m.WaterLossTotalG = loss.TotalG
	m.WaterLossTotalPct = loss.TotalPct

	if err := h.controller.DB.DB.Create(&m).Error; err != nil {
		log.Errorf("error creating measurement for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error recording measurement")
		return
	}

	h.refreshExtremes(&plant, append(wateringHistory(history), cur))

	h.formatter.WriteResponse(w, req, http.StatusCreated, m)
}

// UpdateMeasurement edits a recorded measurement. The edit shifts the loss
// baselines of every later row, so the plant's stored water-loss columns are
// rebuilt and its tracked extremes refreshed
func (h *Handlers) UpdateMeasurement(w http.ResponseWriter, req *http.Request) {
	m, err := h.controller.DB.GetMeasurement(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "measurement")
		return
	}

	var body MeasurementRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}

	if !body.MeasuredAt.IsZero() {
		m.MeasuredAt = body.MeasuredAt
	}
	m.MeasuredWeightG = body.MeasuredWeightG
	m.LastDryWeightG = body.LastDryWeightG
	m.LastWetWeightG = body.LastWetWeightG
	m.WaterAddedG = body.WaterAddedG
	m.Repotting = body.Repotting
	m.Note = body.Note

	cur := watering.Measurement{
		MeasuredAt:      m.MeasuredAt,
		MeasuredWeightG: m.MeasuredWeightG,
		LastDryWeightG:  m.LastDryWeightG,
		LastWetWeightG:  m.LastWetWeightG,
		WaterAddedG:     m.WaterAddedG,
		Repotting:       m.Repotting,
	}
	if m.MeasuredWeightG == nil && !watering.IsWateringEvent(cur) && !m.Repotting {
		h.formatter.WriteError(w, req, http.StatusBadRequest,
			"measurement must be a weighing, a watering (dry/wet weights plus water added), or a repotting")
		return
	}

	if err := h.controller.DB.DB.Save(&m).Error; err != nil {
		log.Errorf("error updating measurement %s: %v", m.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error updating measurement")
		return
	}

	rows, err := h.recomputeLosses(m.PlantID)
	if err != nil {
		log.Errorf("error recomputing losses for plant %s: %v", m.PlantID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error updating measurement")
		return
	}

	if plant, err := h.controller.DB.GetPlant(m.PlantID); err == nil {
		h.refreshExtremes(&plant, wateringHistory(rows))
	} else {
		log.Errorf("error fetching plant %s: %v", m.PlantID, err)
	}

	// Return the row with its rebuilt loss columns
	for i := range rows {
		if rows[i].ID == m.ID {
			m = rows[i]
			break
		}
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, m)
}

// DeleteMeasurement removes a measurement, rebuilds the remaining rows'
// water-loss columns and refreshes the plant's tracked extremes
func (h *Handlers) DeleteMeasurement(w http.ResponseWriter, req *http.Request) {
	m, err := h.controller.DB.GetMeasurement(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "measurement")
		return
	}

	if err := h.controller.DB.DB.Delete(&m).Error; err != nil {
		log.Errorf("error deleting measurement %s: %v", m.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting measurement")
		return
	}

	rows, err := h.recomputeLosses(m.PlantID)
	if err != nil {
		log.Errorf("error recomputing losses for plant %s: %v", m.PlantID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error deleting measurement")
		return
	}

	if plant, err := h.controller.DB.GetPlant(m.PlantID); err == nil {
		h.refreshExtremes(&plant, wateringHistory(rows))
	} else {
		log.Errorf("error fetching plant %s: %v", m.PlantID, err)
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]string{"deleted": m.ID})
}

// recomputeLosses rebuilds the stored water-loss columns of all of a plant's
// measurements and returns the refreshed rows in ascending time order. Only
// rows whose values actually changed are written back
func (h *Handlers) recomputeLosses(plantID string) ([]database.Measurement, error) {
	rows, err := h.controller.DB.GetMeasurements(plantID, nil)
	if err != nil {
		return nil, err
	}

	losses := watering.RecomputeLosses(wateringHistory(rows))
	for i := range rows {
		l := losses[i]
		if intPtrEq(rows[i].WaterLossDayG, l.DayG) &&
			intPtrEq(rows[i].WaterLossTotalG, l.TotalG) &&
			floatPtrEq(rows[i].WaterLossDayPct, l.DayPct) &&
			floatPtrEq(rows[i].WaterLossTotalPct, l.TotalPct) {
			continue
		}
		rows[i].WaterLossDayG = l.DayG
		rows[i].WaterLossDayPct = l.DayPct
		rows[i].WaterLossTotalG = l.TotalG
		rows[i].WaterLossTotalPct = l.TotalPct
		if err := h.controller.DB.DB.Save(&rows[i]).Error; err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// refreshExtremes recomputes the plant's tracked dry-weight and water-added
// extremes from history and persists them when they changed
func (h *Handlers) refreshExtremes(plant *database.Plant, history []watering.Measurement) {
	ex := watering.ComputeExtremes(history)
	changed := false
	if ex.MinDryWeightG != nil && !intPtrEq(plant.MinDryWeightG, ex.MinDryWeightG) {
		plant.MinDryWeightG = ex.MinDryWeightG
		changed = true
	}
	if ex.MaxWaterAddedG != nil && !intPtrEq(plant.MaxWaterWeightG, ex.MaxWaterAddedG) {
		plant.MaxWaterWeightG = ex.MaxWaterAddedG
		changed = true
	}
	if !changed {
		return
	}
	if err := h.controller.DB.DB.Save(plant).Error; err != nil {
		log.Errorf("error refreshing extremes for plant %s: %v", plant.ID, err)
	}
}

// GetChart assembles the chart payload for a plant. Query parameters:
// span (history window, e.g. 90d), width/height (plot size), locale
// (day-first or month-first)
func (h *Handlers) GetChart(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	since, ok := h.parseSinceParam(w, req)
	if !ok {
		return
	}

	rows, err := h.controller.DB.GetMeasurements(plant.ID, since)
	if err != nil {
		log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching measurements")
		return
	}

	cfg := h.chartConfigForRequest(req)
	h.formatter.WriteResponse(w, req, http.StatusOK, buildChart(plant, rows, parseRect(req), cfg))
}

// GetHover resolves a hover position to the nearest sample and a laid-out
// tooltip. Query parameters: x (domain timestamp in ms, required), span,
// width/height, placement (side or below)
func (h *Handlers) GetHover(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	x, err := strconv.ParseFloat(req.URL.Query().Get("x"), 64)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "x query parameter is required")
		return
	}

	since, ok := h.parseSinceParam(w, req)
	if !ok {
		return
	}

	rows, err := h.controller.DB.GetMeasurements(plant.ID, since)
	if err != nil {
		log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching measurements")
		return
	}

	mode := chart.PlaceSide
	if req.URL.Query().Get("placement") == "below" {
		mode = chart.PlaceBelow
	}

	cfg := h.chartConfigForRequest(req)
	h.formatter.WriteResponse(w, req, http.StatusOK, buildHover(plant, rows, parseRect(req), cfg, x, mode))
}

// GetFrequency reports the estimated watering cadence for a plant
func (h *Handlers) GetFrequency(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	rows, err := h.controller.DB.GetMeasurements(plant.ID, nil)
	if err != nil {
		log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching measurements")
		return
	}

	days, events, known := watering.FrequencyDays(wateringHistory(rows))
	h.formatter.WriteResponse(w, req, http.StatusOK, FrequencyResponse{
		PlantID: plant.ID,
		Days:    days,
		Events:  events,
		Known:   known,
	})
}

// GetCalibration reports a plant's under-watering events since the last
// repotting
func (h *Handlers) GetCalibration(w http.ResponseWriter, req *http.Request) {
	plant, ok := h.fetchPlant(w, req)
	if !ok {
		return
	}

	rows, err := h.controller.DB.GetMeasurements(plant.ID, nil)
	if err != nil {
		log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching measurements")
		return
	}

	minDry, maxWater := 0, 0
	if plant.MinDryWeightG != nil {
		minDry = *plant.MinDryWeightG
	}
	if plant.MaxWaterWeightG != nil {
		maxWater = *plant.MaxWaterWeightG
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, CalibrationResponse{
		PlantID: plant.ID,
		Report:  watering.Calibrate(wateringHistory(rows), minDry, maxWater),
	})
}

// GetAllCalibrations reports under-watering events across every active
// plant, skipping plants that are fully saturated or uncalibrated
func (h *Handlers) GetAllCalibrations(w http.ResponseWriter, req *http.Request) {
	plants, err := h.controller.DB.GetPlants(false)
	if err != nil {
		log.Errorf("error fetching plants: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching plants")
		return
	}

	reports := []CalibrationResponse{}
	for _, plant := range plants {
		if plant.MinDryWeightG == nil || plant.MaxWaterWeightG == nil {
			continue
		}
		rows, err := h.controller.DB.GetMeasurements(plant.ID, nil)
		if err != nil {
			log.Errorf("error fetching measurements for plant %s: %v", plant.ID, err)
			continue
		}
		report := watering.Calibrate(wateringHistory(rows), *plant.MinDryWeightG, *plant.MaxWaterWeightG)
		if report == nil {
			continue
		}
		reports = append(reports, CalibrationResponse{PlantID: plant.ID, Report: report})
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, reports)
}

// fetchPlant loads the plant named by the route, writing the error response
// itself when the lookup fails
func (h *Handlers) fetchPlant(w http.ResponseWriter, req *http.Request) (database.Plant, bool) {
	plant, err := h.controller.DB.GetPlant(mux.Vars(req)["id"])
	if err != nil {
		h.writeLookupError(w, req, err, "plant")
		return database.Plant{}, false
	}
	return plant, true
}

func (h *Handlers) writeLookupError(w http.ResponseWriter, req *http.Request, err error, kind string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.formatter.WriteError(w, req, http.StatusNotFound, kind+" not found")
		return
	}
	log.Errorf("error fetching %s: %v", kind, err)
	h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching "+kind)
}

// chartConfigForRequest returns the chart config with any per-request
// locale override applied
func (h *Handlers) chartConfigForRequest(req *http.Request) config.ChartData {
	cfg := h.controller.chartConfig
	if locale := req.URL.Query().Get("locale"); locale != "" {
		cfg.DateLocale = locale
	}
	return cfg
}

// parseSinceParam converts the optional ?span query parameter into a
// cutoff time. A false return means the response was already written
func (h *Handlers) parseSinceParam(w http.ResponseWriter, req *http.Request) (*time.Time, bool) {
	span := req.URL.Query().Get("span")
	if span == "" {
		return nil, true
	}
	d, err := parseSpan(span)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid span: "+span)
		return nil, false
	}
	since := time.Now().Add(-d)
	return &since, true
}

var spanPattern = regexp.MustCompile(`^(\d+)([dwmy])$`)

// parseSpan parses a history window like 90d, 12w, 6m or 1y, falling back
// to Go duration syntax (e.g. 720h)
func parseSpan(s string) (time.Duration, error) {
	if m := spanPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, err
		}
		day := 24 * time.Hour
		switch m[2] {
		case "d":
			return time.Duration(n) * day, nil
		case "w":
			return time.Duration(n) * 7 * day, nil
		case "m":
			return time.Duration(n) * 30 * day, nil
		case "y":
			return time.Duration(n) * 365 * day, nil
		}
	}
	return time.ParseDuration(s)
}

// parseRect derives the plot rectangle from the width/height query
// parameters, with sensible dashboard defaults
func parseRect(req *http.Request) chart.PlotRect {
	width, height := 640.0, 240.0
	if v, err := strconv.ParseFloat(req.URL.Query().Get("width"), 64); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.ParseFloat(req.URL.Query().Get("height"), 64); err == nil && v > 0 {
		height = v
	}
	return chart.PlotRect{Left: 0, Top: 0, Width: width, Height: height}
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
