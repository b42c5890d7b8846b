package presentation

import (
	"github.com/KasumiMercury/park-live-board/internal/domain"
)

type Popup struct {
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	StatusColor string   `json:"status_color"`
	Lines       []string `json:"lines,omitempty"`
}

// Marker is one map pin. Tooltip is the permanent badge above the pin and
// is nil when the record has no label.
type Marker struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Icon      string      `json:"icon"`
	Color     string      `json:"color"`
	Tier      domain.Tier `json:"tier"`
	Tooltip   *string     `json:"tooltip"`
	Popup     Popup       `json:"popup"`
}

// MapMarkers builds a pin for every record with valid coordinates, in
// record order.
func MapMarkers(records []domain.ClassifiedRecord) []Marker {
	markers := make([]Marker, 0, len(records))
	for _, rec := range records {
		if !rec.HasValidCoordinates || rec.Coordinates == nil || !rec.Coordinates.IsFinite() {
			continue
		}

		tier := rec.Classification.Tier
		markers = append(markers, Marker{
			Name:      rec.Name,
			Type:      rec.EntityType.String(),
			Latitude:  rec.Coordinates.Latitude,
			Longitude: rec.Coordinates.Longitude,
			Icon:      Icon(rec.EntityType),
			Color:     Color(tier),
			Tier:      tier,
			Tooltip:   rec.Classification.Label,
			Popup:     popup(rec),
		})
	}
	return markers
}

func popup(rec domain.ClassifiedRecord) Popup {
	p := Popup{
		Title:       rec.Name,
		Status:      rec.Status.String(),
		StatusColor: StatusColor(rec.Status),
	}
	if rec.EntityType.IsVenue() {
		return p
	}
	for _, line := range rec.Classification.Detail.Lines {
		p.Lines = append(p.Lines, line.Text)
	}
	return p
}
