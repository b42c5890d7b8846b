package domain

// MergedRecord is the join of a static point with its live entity.
// Records are rebuilt from scratch on every refresh cycle.
type MergedRecord struct {
	EntityID            string       `json:"entity_id,omitempty"`
	Name                string       `json:"name"`
	EntityType          EntityType   `json:"entity_type"`
	Status              Status       `json:"status"`
	ParkID              string       `json:"park_id,omitempty"`
	ExternalID          string       `json:"external_id,omitempty"`
	AreaName            string       `json:"area_name,omitempty"`
	Coordinates         *Coordinates `json:"coordinates,omitempty"`
	HasValidCoordinates bool         `json:"has_valid_coordinates"`
	Matched             bool         `json:"matched"`
	Queue               Queue        `json:"-"`
	Schedule            []ShowTime   `json:"-"`
}
