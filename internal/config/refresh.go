package config

import (
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

const (
	mapRefreshEnv         = "MAP_REFRESH_SECONDS"
	attractionsRefreshEnv = "ATTRACTIONS_REFRESH_SECONDS"
	showsRefreshEnv       = "SHOWS_REFRESH_SECONDS"

	defaultMapRefresh         = 60 * time.Second
	defaultAttractionsRefresh = 90 * time.Second
	defaultShowsRefresh       = 120 * time.Second
)

type RefreshConfig struct {
	Map         time.Duration
	Attractions time.Duration
	Shows       time.Duration
}

func LoadRefreshConfig() *RefreshConfig {
	return &RefreshConfig{
		Map:         positiveSeconds(mapRefreshEnv, defaultMapRefresh),
		Attractions: positiveSeconds(attractionsRefreshEnv, defaultAttractionsRefresh),
		Shows:       positiveSeconds(showsRefreshEnv, defaultShowsRefresh),
	}
}

// Interval returns the refresh period of view, or zero for an unknown view.
func (c *RefreshConfig) Interval(view domain.View) time.Duration {
	switch view {
	case domain.ViewMap:
		return c.Map
	case domain.ViewAttractions:
		return c.Attractions
	case domain.ViewShows:
		return c.Shows
	}
	return 0
}
