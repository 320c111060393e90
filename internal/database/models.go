package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a place in the home where plants live (e.g. "south window").
type Location struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Notes     string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName implements the gorm Tabler interface
func (Location) TableName() string {
	return "locations"
}

// BeforeCreate assigns a UUID if one was not supplied
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Plant is a tracked houseplant together with its watering calibration.
//
// MinDryWeightG and MaxWaterWeightG bound the pot's weight range and are
// maintained from measurement history; RecommendedWaterThresholdPct expresses
// the watering threshold as a percentage of the water capacity above the dry
// weight.
type Plant struct {
	ID                           string    `gorm:"column:id;primaryKey" json:"id"`
	Name                         string    `gorm:"column:name;not null" json:"name"`
	Species                      string    `gorm:"column:species" json:"species,omitempty"`
	Notes                        string    `gorm:"column:notes" json:"notes,omitempty"`
	LocationID                   *string   `gorm:"column:location_id;index" json:"location_id,omitempty"`
	Location                     *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	MinDryWeightG                *int      `gorm:"column:min_dry_weight_g" json:"min_dry_weight_g,omitempty"`
	MaxWaterWeightG              *int      `gorm:"column:max_water_weight_g" json:"max_water_weight_g,omitempty"`
	RecommendedWaterThresholdPct *int      `gorm:"column:recommended_water_threshold_pct" json:"recommended_water_threshold_pct,omitempty"`
	Archived                     bool      `gorm:"column:archived;default:false" json:"archived"`
	CreatedAt                    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName implements the gorm Tabler interface
func (Plant) TableName() string {
	return "plants"
}

// BeforeCreate assigns a UUID if one was not supplied
func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Measurement is a single scale reading or watering event for a plant.
//
// A plain weighing sets MeasuredWeightG only. A watering event leaves
// MeasuredWeightG nil and records the dry weight before watering, the wet
// weight after, and the water added. The water-loss columns are computed
// server-side when the measurement is stored.
type Measurement struct {
	ID                string    `gorm:"column:id;primaryKey" json:"id"`
	PlantID           string    `gorm:"column:plant_id;index;not null" json:"plant_id"`
	MeasuredAt        time.Time `gorm:"column:measured_at;index;not null" json:"measured_at"`
	MeasuredWeightG   *int      `gorm:"column:measured_weight_g" json:"measured_weight_g,omitempty"`
	LastDryWeightG    *int      `gorm:"column:last_dry_weight_g" json:"last_dry_weight_g,omitempty"`
	LastWetWeightG    *int      `gorm:"column:last_wet_weight_g" json:"last_wet_weight_g,omitempty"`
	WaterAddedG       *int      `gorm:"column:water_added_g" json:"water_added_g,omitempty"`
	WaterLossDayG     *int      `gorm:"column:water_loss_day_g" json:"water_loss_day_g,omitempty"`
	WaterLossDayPct   *float64  `gorm:"column:water_loss_day_pct" json:"water_loss_day_pct,omitempty"`
	WaterLossTotalG   *int      `gorm:"column:water_loss_total_g" json:"water_loss_total_g,omitempty"`
	WaterLossTotalPct *float64  `gorm:"column:water_loss_total_pct" json:"water_loss_total_pct,omitempty"`
	Repotting         bool      `gorm:"column:repotting;default:false" json:"repotting"`
	Note              string    `gorm:"column:note" json:"note,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName implements the gorm Tabler interface
func (Measurement) TableName() string {
	return "measurements"
}

// BeforeCreate assigns a UUID if one was not supplied
func (m *Measurement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
