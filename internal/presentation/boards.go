package presentation

import (
	"sort"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/service/zone"
)

// missingWait sorts attractions without a standby wait after every
// reported one.
const missingWait = 999

type AttractionCard struct {
	Name            string        `json:"name"`
	Status          domain.Status `json:"status"`
	Tier            domain.Tier   `json:"tier"`
	Label           *string       `json:"label"`
	StandbyWait     *int          `json:"standby_wait,omitempty"`
	SingleRiderWait *int          `json:"single_rider_wait,omitempty"`
	Detail          domain.Detail `json:"detail"`
}

type LandGroup struct {
	Land  string           `json:"land"`
	Logo  string           `json:"logo"`
	Cards []AttractionCard `json:"cards"`
}

type AttractionPark struct {
	Park  string      `json:"park"`
	Lands []LandGroup `json:"lands"`
}

type ShowCard struct {
	Name     string                `json:"name"`
	Status   domain.Status         `json:"status"`
	Venue    string                `json:"venue,omitempty"`
	Tier     domain.Tier           `json:"tier"`
	Label    *string               `json:"label"`
	Upcoming []domain.UpcomingShow `json:"upcoming,omitempty"`
	Detail   domain.Detail         `json:"detail"`
}

type ShowPark struct {
	Park  string     `json:"park"`
	Shows []ShowCard `json:"shows"`
}

type Presenter struct {
	zones *zone.Classifier
}

func NewPresenter(zones *zone.Classifier) *Presenter {
	return &Presenter{zones: zones}
}

// AttractionBoard groups attractions by park then land. Within a land,
// operating attractions come first, then shorter standby waits.
func (p *Presenter) AttractionBoard(records []domain.ClassifiedRecord) []AttractionPark {
	byPark := make(map[string]map[string][]AttractionCard)
	for _, rec := range records {
		if rec.EntityType != domain.EntityTypeAttraction {
			continue
		}
		park, land := rec.Location.Park, rec.Location.Land
		if land == "" {
			land = zone.Unclassified
		}
		if byPark[park] == nil {
			byPark[park] = make(map[string][]AttractionCard)
		}
		byPark[park][land] = append(byPark[park][land], AttractionCard{
			Name:            rec.Name,
			Status:          rec.Status,
			Tier:            rec.Classification.Tier,
			Label:           rec.Classification.Label,
			StandbyWait:     rec.StandbyWait,
			SingleRiderWait: rec.SingleRiderWait,
			Detail:          rec.Classification.Detail,
		})
	}

	parks := make([]AttractionPark, 0, len(byPark))
	for _, park := range p.zones.ParkOrder() {
		lands, ok := byPark[park]
		if !ok {
			continue
		}
		group := AttractionPark{Park: park}
		for _, land := range p.landOrder(park, lands) {
			cards := lands[land]
			sortAttractions(cards)
			group.Lands = append(group.Lands, LandGroup{
				Land:  land,
				Logo:  zone.LogoFile(land),
				Cards: cards,
			})
		}
		parks = append(parks, group)
	}
	return parks
}

// landOrder lists the lands present in lands following the park layout.
// Lands missing from the layout go before Unclassified, sorted by name.
func (p *Presenter) landOrder(park string, lands map[string][]AttractionCard) []string {
	layout := p.zones.LandOrder(park)
	known := make(map[string]struct{}, len(layout))
	for _, l := range layout {
		known[l] = struct{}{}
	}

	var extra []string
	for l := range lands {
		if _, ok := known[l]; !ok {
			extra = append(extra, l)
		}
	}
	sort.Strings(extra)

	order := make([]string, 0, len(lands))
	for _, l := range layout {
		if l == zone.Unclassified {
			order = append(order, extra...)
			extra = nil
		}
		if _, ok := lands[l]; ok {
			order = append(order, l)
		}
	}
	return append(order, extra...)
}

func sortAttractions(cards []AttractionCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		oi, oj := cards[i].Status.IsOperating(), cards[j].Status.IsOperating()
		if oi != oj {
			return oi
		}
		return waitOrMissing(cards[i].StandbyWait) < waitOrMissing(cards[j].StandbyWait)
	})
}

func waitOrMissing(wait *int) int {
	if wait == nil {
		return missingWait
	}
	return *wait
}

// ShowBoard lists shows still to come after now, plus shows under
// refurbishment, grouped by park and sorted by name.
func (p *Presenter) ShowBoard(records []domain.ClassifiedRecord, now time.Time) []ShowPark {
	byPark := make(map[string][]ShowCard)
	for _, rec := range records {
		if rec.EntityType != domain.EntityTypeShow || zone.IsExcludedShow(rec.Name) {
			continue
		}

		upcoming := upcomingAfter(rec.Classification.Detail.Upcoming, now)
		if rec.Status != domain.StatusRefurbishment && len(upcoming) == 0 {
			continue
		}

		park := rec.Location.Park
		byPark[park] = append(byPark[park], ShowCard{
			Name:     rec.Name,
			Status:   rec.Status,
			Venue:    rec.Location.Land,
			Tier:     rec.Classification.Tier,
			Label:    rec.Classification.Label,
			Upcoming: upcoming,
			Detail:   rec.Classification.Detail,
		})
	}

	parks := make([]ShowPark, 0, len(byPark))
	for _, park := range p.zones.ParkOrder() {
		shows, ok := byPark[park]
		if !ok {
			continue
		}
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Name < shows[j].Name
		})
		parks = append(parks, ShowPark{Park: park, Shows: shows})
	}
	return parks
}

func upcomingAfter(shows []domain.UpcomingShow, now time.Time) []domain.UpcomingShow {
	var out []domain.UpcomingShow
	for _, s := range shows {
		if s.Start.After(now) {
			out = append(out, s)
		}
	}
	return out
}
