package zone

import "strings"

const (
	DisneylandParkID = "dae968d5-630d-4719-8b06-3d107e944401"
	StudiosParkID    = "ca888437-ebb4-4d50-aed2-d227f7096968"

	DisneylandParkName = "Disneyland Park"
	StudiosParkName    = "Walt Disney Studios Park"
	UnknownParkName    = "Unknown"

	Unclassified = "Unclassified"
)

// Rule assigns a land or venue to entities whose external id starts with
// Prefix (and ends with Suffix when set). A rule with only NameContains
// matches on the entity name instead.
type Rule struct {
	Prefix       string
	Suffix       string
	NameContains string
	Land         string
}

func (r Rule) Matches(externalID, name string) bool {
	if r.Prefix == "" && r.Suffix == "" {
		return r.NameContains != "" && strings.Contains(name, r.NameContains)
	}
	if !strings.HasPrefix(externalID, r.Prefix) {
		return false
	}
	return strings.HasSuffix(externalID, r.Suffix)
}

// Park is the land layout of one park. Order is the display order of lands,
// with Unclassified always last.
type Park struct {
	ID    string
	Name  string
	Lands []Rule
	Order []string
}

func DisneylandPark() Park {
	return Park{
		ID:   DisneylandParkID,
		Name: DisneylandParkName,
		Lands: []Rule{
			{Prefix: "P1RA", Land: "Frontierland"},
			{Prefix: "P1DA", Land: "Discoveryland"},
			{Prefix: "P1AA", Land: "Adventureland"},
			{Prefix: "P1NA", Land: "Fantasyland"},
			{Prefix: "P1MA", Land: "Main Street, U.S.A."},
			{NameContains: "Princess Pavilion", Land: "Fantasyland"},
		},
		Order: []string{
			"Main Street, U.S.A.",
			"Frontierland",
			"Adventureland",
			"Fantasyland",
			"Discoveryland",
			Unclassified,
		},
	}
}

func StudiosPark() Park {
	return Park{
		ID:   StudiosParkID,
		Name: StudiosParkName,
		Lands: []Rule{
			{Prefix: "P2AC", Land: "Avengers Campus"},
			{Prefix: "P2TM", Land: "Toon Studio"},
			{Prefix: "P2HA", Land: "Hollywood Boulevard"},
			{Prefix: "P2ZA", Land: "Production Courtyard / Front Lot"},
			{Prefix: "P2XA0", Land: "Worlds of Pixar"},
			{Prefix: "P2E", Land: "Worlds of Pixar"},
			{NameContains: "Studio Theater", Land: "Production Courtyard / Front Lot"},
			{NameContains: "Front Lot", Land: "Production Courtyard / Front Lot"},
		},
		Order: []string{
			"Hollywood Boulevard",
			"Production Courtyard / Front Lot",
			"Toon Studio",
			"Worlds of Pixar",
			"Avengers Campus",
			Unclassified,
		},
	}
}

// Generic venue names that are replaced by the feed's area name when one
// is reported.
const (
	genericDisneylandVenue = "Disneyland Park Zone"
	genericStudiosVenue    = "Studios Park Zone"
)

// ShowVenues lists the performance locations keyed by external id, most
// specific first.
func ShowVenues() []Rule {
	return []Rule{
		{Prefix: "P1", Suffix: "G103", Land: "Discoveryland Theater"},
		{Prefix: "P1GS99", Land: "Central Plaza / Main Street"},
		{Prefix: "P1GS21", Land: "Parade route: Fantasyland -> Central Plaza"},
		{Prefix: "P2GS54", Land: "World Premiere Plaza"},
		{Prefix: "P2GS63", Land: "Avengers Campus"},
		{Prefix: "P2GS23", Land: "World Premiere Plaza"},
		{Prefix: "P2YS03", Land: "World Premiere Plaza"},
		{Prefix: "P2GS58", Land: "Studio Theater"},
		{Prefix: "P1", Land: genericDisneylandVenue},
		{Prefix: "P2", Land: genericStudiosVenue},
	}
}

// ExcludedShows are feed entries that are seating areas rather than shows.
var ExcludedShows = []string{
	"Reserved viewing area: Disney Stars on Parade",
	"Reserved viewing area: Nighttime show",
}

func IsExcludedShow(name string) bool {
	for _, n := range ExcludedShows {
		if n == name {
			return true
		}
	}
	return false
}
