package presentation

import "github.com/KasumiMercury/park-live-board/internal/domain"

const (
	IconAttraction = "fa-map-marker-alt"
	IconShow       = "fa-theater-masks"
	IconDining     = "fa-utensils"
	IconShop       = "fa-shopping-bag"
)

const (
	ColorOpen          = "#198754"
	ColorLowWait       = "#28a745"
	ColorHighWait      = "#fd7e14"
	ColorClosed        = "#dc3545"
	ColorRefurbishment = "#ffc107"
	ColorUnknown       = "#0d6fdc"
	ColorShowLive      = "#6f42c1"
)

var tierColors = map[domain.Tier]string{
	domain.TierDefault: ColorOpen,
	domain.TierGold:    ColorOpen,
	domain.TierGreen:   ColorLowWait,
	domain.TierOrange:  ColorHighWait,
	domain.TierRed:     ColorClosed,

	domain.TierOpen:          ColorOpen,
	domain.TierOpenNoData:    ColorOpen,
	domain.TierReservation:   ColorOpen,
	domain.TierClosed:        ColorClosed,
	domain.TierRefurbishment: ColorRefurbishment,
	domain.TierUnknown:       ColorUnknown,

	domain.TierShowLive:   ColorShowLive,
	domain.TierShowGold:   ColorOpen,
	domain.TierShowGreen:  ColorLowWait,
	domain.TierShowOrange: ColorHighWait,
	domain.TierShowRed:    ColorClosed,
	domain.TierShowFar:    ColorUnknown,
}

// Color maps a tier to its marker colour. Unrecognised tiers render as
// unknown.
func Color(tier domain.Tier) string {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return ColorUnknown
}

// StatusColor is the colour of the bare status line in a popup.
func StatusColor(status domain.Status) string {
	switch status {
	case domain.StatusClosed, domain.StatusDown:
		return ColorClosed
	case domain.StatusRefurbishment:
		return ColorRefurbishment
	case domain.StatusUnknown:
		return ColorUnknown
	}
	return ColorOpen
}

func Icon(t domain.EntityType) string {
	switch t {
	case domain.EntityTypeShow:
		return IconShow
	case domain.EntityTypeRestaurant, domain.EntityTypeDining:
		return IconDining
	case domain.EntityTypeShop:
		return IconShop
	}
	return IconAttraction
}
