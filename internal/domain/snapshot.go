package domain

import (
	"time"

	"github.com/google/uuid"
)

// View identifies one refreshed board.
type View string

const (
	ViewMap         View = "map"
	ViewAttractions View = "attractions"
	ViewShows       View = "shows"
)

func (v View) String() string {
	return string(v)
}

func (v View) IsValid() bool {
	switch v {
	case ViewMap, ViewAttractions, ViewShows:
		return true
	}
	return false
}

func AllViews() []View {
	return []View{ViewMap, ViewAttractions, ViewShows}
}

// Location is the park and land (or venue) an entity belongs to.
type Location struct {
	Park string `json:"park"`
	Land string `json:"land"`
}

// ClassifiedRecord is a merged record with its classification. StandbyWait
// and SingleRiderWait are copied out of the queue so that snapshots restored
// from storage still sort and record correctly.
type ClassifiedRecord struct {
	MergedRecord
	Classification  ClassificationResult `json:"classification"`
	Location        Location             `json:"location"`
	StandbyWait     *int                 `json:"standby_wait,omitempty"`
	SingleRiderWait *int                 `json:"single_rider_wait,omitempty"`
}

// Snapshot is the complete classified state of one view produced by a
// single refresh cycle.
type Snapshot struct {
	ID          uuid.UUID          `json:"id"`
	View        View               `json:"view"`
	GeneratedAt time.Time          `json:"generated_at"`
	Records     []ClassifiedRecord `json:"records"`
}

// NewerThan reports whether s was produced by a cycle started after other.
func (s *Snapshot) NewerThan(other *Snapshot) bool {
	if other == nil {
		return true
	}
	return s.GeneratedAt.After(other.GeneratedAt)
}
