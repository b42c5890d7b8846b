package zone

import (
	"strings"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

type Classifier struct {
	parks  []Park
	venues []Rule
}

func NewClassifier() *Classifier {
	return &Classifier{
		parks:  []Park{DisneylandPark(), StudiosPark()},
		venues: ShowVenues(),
	}
}

func (c *Classifier) ParkName(parkID string) string {
	for _, p := range c.parks {
		if p.ID == parkID {
			return p.Name
		}
	}
	return UnknownParkName
}

// ParkOrder returns park names in display order, unknown last.
func (c *Classifier) ParkOrder() []string {
	order := make([]string, 0, len(c.parks)+1)
	for _, p := range c.parks {
		order = append(order, p.Name)
	}
	return append(order, UnknownParkName)
}

// LandOrder returns the land display order of the named park. Parks with
// no layout only have the unclassified bucket.
func (c *Classifier) LandOrder(parkName string) []string {
	for _, p := range c.parks {
		if p.Name == parkName {
			return p.Order
		}
	}
	return []string{Unclassified}
}

// Land resolves the themed land of an attraction. Entities matching no
// rule land in Unclassified and are never dropped.
func (c *Classifier) Land(externalID, name string) string {
	for _, p := range c.parks {
		for _, r := range p.Lands {
			if r.Matches(externalID, name) {
				return r.Land
			}
		}
	}
	return Unclassified
}

// Venue resolves where a show is performed. Generic park codes defer to
// the area name reported by the feed. An empty string means no venue is
// known.
func (c *Classifier) Venue(externalID, areaName string) string {
	for _, r := range c.venues {
		if !r.Matches(externalID, "") {
			continue
		}
		if isGenericVenue(r.Land) && strings.TrimSpace(areaName) != "" {
			return areaName
		}
		return r.Land
	}
	return ""
}

// Locate resolves the park and land of a record. Shows use venue rules,
// everything else land rules.
func (c *Classifier) Locate(rec domain.MergedRecord) domain.Location {
	loc := domain.Location{Park: c.ParkName(rec.ParkID)}
	if rec.EntityType == domain.EntityTypeShow {
		loc.Land = c.Venue(rec.ExternalID, rec.AreaName)
		return loc
	}
	loc.Land = c.Land(rec.ExternalID, rec.Name)
	return loc
}

// LogoFile derives the land logo asset name, e.g. "main_street_usa_logo.png".
func LogoFile(land string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(land) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "_") + "_logo.png"
}

func isGenericVenue(land string) bool {
	return land == genericDisneylandVenue || land == genericStudiosVenue
}
