package database

import (
	"fmt"
	"time"
)

// GetPlants retrieves all plants, newest first. Archived plants are excluded
// unless includeArchived is set.
func (c *Client) GetPlants(includeArchived bool) ([]Plant, error) {
	var plants []Plant
	query := c.DB.Preload("Location").Order("created_at DESC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("error querying database for plants: %w", err)
	}
	return plants, nil
}

// GetPlant retrieves a single plant by ID
func (c *Client) GetPlant(id string) (Plant, error) {
	var plant Plant
	if err := c.DB.Preload("Location").First(&plant, "id = ?", id).Error; err != nil {
		return Plant{}, err
	}
	return plant, nil
}

// GetLocations retrieves all locations ordered by name
func (c *Client) GetLocations() ([]Location, error) {
	var locations []Location
	if err := c.DB.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("error querying database for locations: %w", err)
	}
	return locations, nil
}

// GetLocation retrieves a single location by ID
func (c *Client) GetLocation(id string) (Location, error) {
	var location Location
	if err := c.DB.First(&location, "id = ?", id).Error; err != nil {
		return Location{}, err
	}
	return location, nil
}

// GetMeasurements retrieves a plant's full measurement history in ascending
// time order, optionally limited to measurements at or after since.
func (c *Client) GetMeasurements(plantID string, since *time.Time) ([]Measurement, error) {
	var measurements []Measurement
	query := c.DB.Where("plant_id = ?", plantID).Order("measured_at ASC")
	if since != nil {
		query = query.Where("measured_at >= ?", *since)
	}
	if err := query.Find(&measurements).Error; err != nil {
		return nil, fmt.Errorf("error querying database for measurements: %w", err)
	}
	return measurements, nil
}

// GetMeasurement retrieves a single measurement by ID
func (c *Client) GetMeasurement(id string) (Measurement, error) {
	var m Measurement
	if err := c.DB.First(&m, "id = ?", id).Error; err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// GetLatestMeasurement retrieves the most recent measurement for a plant
func (c *Client) GetLatestMeasurement(plantID string) (Measurement, error) {
	var m Measurement
	if err := c.DB.Where("plant_id = ?", plantID).Order("measured_at DESC").First(&m).Error; err != nil {
		return Measurement{}, err
	}
	return m, nil
}
