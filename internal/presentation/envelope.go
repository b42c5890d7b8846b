package presentation

import (
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// Board is the payload served for one view.
type Board struct {
	View        domain.View `json:"view"`
	SnapshotID  uuid.UUID   `json:"snapshot_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Data        any         `json:"data"`
}

// Render adapts snap to the structure of its view.
func (p *Presenter) Render(snap *domain.Snapshot, now time.Time) Board {
	b := Board{
		View:        snap.View,
		SnapshotID:  snap.ID,
		GeneratedAt: snap.GeneratedAt,
	}

	switch snap.View {
	case domain.ViewMap:
		b.Data = MapMarkers(snap.Records)
	case domain.ViewAttractions:
		b.Data = p.AttractionBoard(snap.Records)
	case domain.ViewShows:
		b.Data = p.ShowBoard(snap.Records, now)
	default:
		b.Data = snap.Records
	}
	return b
}
