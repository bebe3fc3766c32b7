package services

import (
	"github.com/umahmood/haversine"

	"talentpulse/hr-analytics/internal/config"
)

type GeofenceResult struct {
	DistanceKM  float64
	WithinFence bool
}

type GeofenceService interface {
	Check(latitude, longitude float64) GeofenceResult
}

type geofenceService struct {
	office   haversine.Coord
	radiusKM float64
}

func NewGeofenceService(cfg config.GeofenceConfig) GeofenceService {
	return &geofenceService{
		office:   haversine.Coord{Lat: cfg.OfficeLat, Lon: cfg.OfficeLng},
		radiusKM: cfg.RadiusKM,
	}
}

// Check implements GeofenceService. It measures the great-circle
// distance from the office to the given point.
func (g *geofenceService) Check(latitude, longitude float64) GeofenceResult {
	point := haversine.Coord{Lat: latitude, Lon: longitude}
	_, km := haversine.Distance(g.office, point)

	return GeofenceResult{
		DistanceKM:  km,
		WithinFence: km <= g.radiusKM,
	}
}
