package domain

import "math"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StaticPoint is a reference entry of the static catalog. Coordinates is nil
// when the catalog entry had missing or non-numeric coordinates.
type StaticPoint struct {
	Name        string
	Type        EntityType
	Coordinates *Coordinates
	ExternalID  string
}

// HasValidCoordinates reports whether the point has a finite position.
func (p StaticPoint) HasValidCoordinates() bool {
	return p.Coordinates != nil && p.Coordinates.IsFinite()
}

func (c Coordinates) IsFinite() bool {
	return finite(c.Latitude) && finite(c.Longitude)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
