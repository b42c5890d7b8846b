package merge

import (
	"strings"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// CollisionSide tells which input carried the duplicate name.
type CollisionSide string

const (
	CollisionLive   CollisionSide = "live"
	CollisionStatic CollisionSide = "static"
)

// Collision describes a case-insensitive duplicate name that was resolved
// by last-write-wins.
type Collision struct {
	Side CollisionSide
	Key  string
}

type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

// Merge joins static points with live entities on the uppercased name.
//
// Duplicate live names: the last entity in feed order wins. Duplicate
// static names: only the last point with that name receives the live
// match, earlier ones stay UNKNOWN. Output order follows points.
func (m *Merger) Merge(points []domain.StaticPoint, entities []domain.LiveEntity) ([]domain.MergedRecord, []Collision) {
	var collisions []Collision

	index := make(map[string]domain.LiveEntity, len(entities))
	for _, entity := range entities {
		if entity.Name == "" {
			continue
		}
		key := nameKey(entity.Name)
		if _, exists := index[key]; exists {
			collisions = append(collisions, Collision{Side: CollisionLive, Key: key})
		}
		index[key] = entity
	}

	owner := make(map[string]int, len(points))
	for i, point := range points {
		key := nameKey(point.Name)
		if _, exists := owner[key]; exists {
			collisions = append(collisions, Collision{Side: CollisionStatic, Key: key})
		}
		owner[key] = i
	}

	records := make([]domain.MergedRecord, 0, len(points))
	for i, point := range points {
		key := nameKey(point.Name)
		entity, ok := index[key]
		if !ok || owner[key] != i {
			records = append(records, fromStatic(point))
			continue
		}
		records = append(records, overlay(point, entity))
	}

	return records, collisions
}

// FromLive wraps live entities that have no catalog entry, as used by the
// list views.
func (m *Merger) FromLive(entities []domain.LiveEntity) []domain.MergedRecord {
	records := make([]domain.MergedRecord, 0, len(entities))
	for _, entity := range entities {
		records = append(records, domain.MergedRecord{
			EntityID:   entity.ID,
			Name:       entity.Name,
			EntityType: entity.EntityType,
			Status:     entity.Status,
			ParkID:     entity.ParkID,
			ExternalID: entity.ExternalID,
			AreaName:   entity.AreaName,
			Matched:    true,
			Queue:      entity.Queue,
			Schedule:   entity.Schedule,
		})
	}
	return records
}

func nameKey(name string) string {
	return strings.ToUpper(name)
}

func fromStatic(point domain.StaticPoint) domain.MergedRecord {
	return domain.MergedRecord{
		Name:                point.Name,
		EntityType:          point.Type,
		Status:              domain.StatusUnknown,
		ExternalID:          point.ExternalID,
		Coordinates:         point.Coordinates,
		HasValidCoordinates: point.HasValidCoordinates(),
	}
}

func overlay(point domain.StaticPoint, entity domain.LiveEntity) domain.MergedRecord {
	record := fromStatic(point)
	record.Matched = true
	record.EntityID = entity.ID
	record.Queue = entity.Queue
	record.Schedule = entity.Schedule
	record.ParkID = entity.ParkID
	record.AreaName = entity.AreaName

	if entity.Name != "" {
		record.Name = entity.Name
	}
	if entity.ExternalID != "" {
		record.ExternalID = entity.ExternalID
	}

	record.Status = entity.Status
	if record.Status == "" {
		record.Status = domain.StatusUnknown
	}

	// The catalog's own typing is authoritative over the feed.
	if point.Type == "" {
		record.EntityType = entity.EntityType
	}

	return record
}
