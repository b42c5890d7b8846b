package catalog

import (
	"math"
	"strings"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// Entry is one catalog record as stored on disk. Coordinate fields are
// untyped so that strings or nulls degrade to "no coordinates" instead of failing
// the whole file.
type Entry struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	ExternalID  string       `json:"externalId"`
	Lat         any          `json:"lat"`
	Lon         any          `json:"lon"`
	Coordinates *coordinates `json:"coordinates"`
}

type coordinates struct {
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

func (e Entry) ToDomain() domain.StaticPoint {
	return domain.StaticPoint{
		Name:        e.Name,
		Type:        domain.EntityType(strings.ToUpper(strings.TrimSpace(e.Type))),
		ExternalID:  e.ExternalID,
		Coordinates: e.coordinates(),
	}
}

// coordinates prefers the flat lat/lon pair and falls back to the nested
// object. Nil means no usable position.
func (e Entry) coordinates() *domain.Coordinates {
	if lat, ok := number(e.Lat); ok {
		if lon, ok := number(e.Lon); ok {
			return &domain.Coordinates{Latitude: lat, Longitude: lon}
		}
	}
	if e.Coordinates != nil {
		lat, latOK := number(e.Coordinates.Latitude)
		lon, lonOK := number(e.Coordinates.Longitude)
		if latOK && lonOK {
			return &domain.Coordinates{Latitude: lat, Longitude: lon}
		}
	}
	return nil
}

// number accepts JSON numbers only. Strings, nulls and non-finite values
// leave the point without coordinates.
func number(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
