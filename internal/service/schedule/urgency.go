package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

var ErrUnknownScheme = errors.New("unknown urgency scheme")

const (
	SchemeExtended = "extended"
	SchemeCompact  = "compact"
)

// Breakpoint maps every minute count strictly below Below to Tier.
type Breakpoint struct {
	Below int
	Tier  domain.Tier
}

// UrgencyScheme maps minutes until the next show to an urgency tier.
// Breakpoints are checked in order; anything at or past the last one, or
// no occurrence at all, falls into Far.
type UrgencyScheme struct {
	Name        string
	Breakpoints []Breakpoint
	Far         domain.Tier
}

// ExtendedScheme uses the 15/30/45/60 breakpoints of the show board.
func ExtendedScheme() UrgencyScheme {
	return UrgencyScheme{
		Name: SchemeExtended,
		Breakpoints: []Breakpoint{
			{Below: 15, Tier: domain.TierShowGold},
			{Below: 30, Tier: domain.TierShowRed},
			{Below: 45, Tier: domain.TierShowOrange},
			{Below: 60, Tier: domain.TierShowGreen},
		},
		Far: domain.TierShowFar,
	}
}

// CompactScheme stops at 45 minutes, as the map popups do.
func CompactScheme() UrgencyScheme {
	return UrgencyScheme{
		Name: SchemeCompact,
		Breakpoints: []Breakpoint{
			{Below: 15, Tier: domain.TierShowGold},
			{Below: 30, Tier: domain.TierShowRed},
			{Below: 45, Tier: domain.TierShowOrange},
		},
		Far: domain.TierShowFar,
	}
}

func SchemeByName(name string) (UrgencyScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeExtended:
		return ExtendedScheme(), nil
	case SchemeCompact:
		return CompactScheme(), nil
	default:
		return UrgencyScheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

func (s UrgencyScheme) Tier(occ domain.Occurrence) domain.Tier {
	if !occ.Found {
		return s.Far
	}
	if occ.IsLive {
		return domain.TierShowLive
	}
	return s.TierForMinutes(occ.MinutesUntil)
}

// TierForMinutes ignores the live window; it is used for the per-time boxes
// of the show board.
func (s UrgencyScheme) TierForMinutes(minutes int) domain.Tier {
	for _, bp := range s.Breakpoints {
		if minutes < bp.Below {
			return bp.Tier
		}
	}
	return s.Far
}
