package zone

import (
	"reflect"
	"testing"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

func TestClassifier_Land(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name       string
		externalID string
		entityName string
		want       string
	}{
		{"frontierland prefix", "P1RA00", "Big Thunder Mountain", "Frontierland"},
		{"discoveryland prefix", "P1DA09", "Orbitron", "Discoveryland"},
		{"adventureland prefix", "P1AA02", "Pirates of the Caribbean", "Adventureland"},
		{"fantasyland prefix", "P1NA16", "it's a small world", "Fantasyland"},
		{"main street prefix", "P1MA04", "Horse-Drawn Streetcars", "Main Street, U.S.A."},
		{"princess pavilion by name", "", "Princess Pavilion", "Fantasyland"},
		{"avengers campus", "P2AC01", "Avengers Assemble: Flight Force", "Avengers Campus"},
		{"toon studio", "P2TM02", "Crush's Coaster", "Toon Studio"},
		{"hollywood boulevard", "P2HA00", "The Twilight Zone Tower of Terror", "Hollywood Boulevard"},
		{"production courtyard", "P2ZA02", "Studio Tram", "Production Courtyard / Front Lot"},
		{"worlds of pixar legacy code", "P2XA03", "Ratatouille", "Worlds of Pixar"},
		{"worlds of pixar", "P2EA01", "RC Racer", "Worlds of Pixar"},
		{"studio theater by name", "", "Studio Theater", "Production Courtyard / Front Lot"},
		{"unknown prefix is unclassified", "P3ZZ", "Somewhere", Unclassified},
		{"empty id is unclassified", "", "Meet Mickey Mouse", Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Land(tt.externalID, tt.entityName); got != tt.want {
				t.Errorf("Land(%q, %q) = %q, want %q", tt.externalID, tt.entityName, got, tt.want)
			}
		})
	}
}

func TestClassifier_Venue(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name       string
		externalID string
		areaName   string
		want       string
	}{
		{"theater suffix", "P1DG103", "", "Discoveryland Theater"},
		{"central plaza", "P1GS9901", "", "Central Plaza / Main Street"},
		{"parade route", "P1GS2100", "", "Parade route: Fantasyland -> Central Plaza"},
		{"world premiere plaza", "P2GS54", "", "World Premiere Plaza"},
		{"avengers campus", "P2GS63", "", "Avengers Campus"},
		{"studio theater", "P2GS58", "", "Studio Theater"},
		{"generic P1 uses area name", "P1XX01", "Adventure Isle", "Adventure Isle"},
		{"generic P1 without area name", "P1XX01", "", "Disneyland Park Zone"},
		{"generic P2 uses area name", "P2XX01", "Front Lot", "Front Lot"},
		{"unknown prefix has no venue", "ZZ", "Somewhere", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Venue(tt.externalID, tt.areaName); got != tt.want {
				t.Errorf("Venue(%q, %q) = %q, want %q", tt.externalID, tt.areaName, got, tt.want)
			}
		})
	}
}

func TestClassifier_Locate(t *testing.T) {
	classifier := NewClassifier()

	attraction := domain.MergedRecord{
		Name:       "Phantom Manor",
		EntityType: domain.EntityTypeAttraction,
		ParkID:     DisneylandParkID,
		ExternalID: "P1RA03",
	}
	show := domain.MergedRecord{
		Name:       "Together: a Pixar Musical Adventure",
		EntityType: domain.EntityTypeShow,
		ParkID:     StudiosParkID,
		ExternalID: "P2GS58",
	}
	orphan := domain.MergedRecord{Name: "Mystery", EntityType: domain.EntityTypeAttraction}

	tests := []struct {
		name string
		rec  domain.MergedRecord
		want domain.Location
	}{
		{"attraction", attraction, domain.Location{Park: DisneylandParkName, Land: "Frontierland"}},
		{"show", show, domain.Location{Park: StudiosParkName, Land: "Studio Theater"}},
		{"unknown park", orphan, domain.Location{Park: UnknownParkName, Land: Unclassified}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Locate(tt.rec); got != tt.want {
				t.Errorf("Locate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifier_Orders(t *testing.T) {
	classifier := NewClassifier()

	wantParks := []string{DisneylandParkName, StudiosParkName, UnknownParkName}
	if got := classifier.ParkOrder(); !reflect.DeepEqual(got, wantParks) {
		t.Errorf("ParkOrder() = %v, want %v", got, wantParks)
	}

	for _, park := range []string{DisneylandParkName, StudiosParkName, UnknownParkName} {
		order := classifier.LandOrder(park)
		if order[len(order)-1] != Unclassified {
			t.Errorf("LandOrder(%q) does not end with %q: %v", park, Unclassified, order)
		}
	}

	if got := classifier.LandOrder(DisneylandParkName)[0]; got != "Main Street, U.S.A." {
		t.Errorf("first Disneyland Park land = %q, want Main Street, U.S.A.", got)
	}
	if got := classifier.LandOrder(StudiosParkName)[0]; got != "Hollywood Boulevard" {
		t.Errorf("first Studios land = %q, want Hollywood Boulevard", got)
	}
}

func TestLogoFile(t *testing.T) {
	tests := []struct {
		land string
		want string
	}{
		{"Main Street, U.S.A.", "main_street_usa_logo.png"},
		{"Production Courtyard / Front Lot", "production_courtyard_front_lot_logo.png"},
		{"Frontierland", "frontierland_logo.png"},
	}

	for _, tt := range tests {
		if got := LogoFile(tt.land); got != tt.want {
			t.Errorf("LogoFile(%q) = %q, want %q", tt.land, got, tt.want)
		}
	}
}

func TestIsExcludedShow(t *testing.T) {
	tests := []struct {
		name string
		show string
		want bool
	}{
		{name: "parade seating", show: "Reserved viewing area: Disney Stars on Parade", want: true},
		{name: "night show seating", show: "Reserved viewing area: Nighttime show", want: true},
		{name: "regular show", show: "Disney Stars on Parade", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExcludedShow(tt.show); got != tt.want {
				t.Errorf("IsExcludedShow(%q) = %v, want %v", tt.show, got, tt.want)
			}
		})
	}
}
