package config

import (
	"os"
	"time"
)

const (
	liveFeedBaseURLEnv = "LIVE_FEED_BASE_URL"
	destinationIDEnv   = "DESTINATION_ID"
	catalogLocationEnv = "CATALOG_LOCATION"
	feedTimeoutEnv     = "FEED_TIMEOUT_SECONDS"

	defaultLiveFeedBaseURL = "https://api.themeparks.wiki/v1"
	defaultDestinationID   = "e8d0207f-da8a-4048-bec8-117aa946b2c2"
	defaultCatalogLocation = "data/points.json"
	defaultFeedTimeout     = 30 * time.Second
)

type FeedConfig struct {
	BaseURL       string
	DestinationID string
	// CatalogLocation is a file path or an http(s) URL.
	CatalogLocation string
	Timeout         time.Duration
}

func LoadFeedConfig() *FeedConfig {
	return &FeedConfig{
		BaseURL:         getEnvOrDefault(liveFeedBaseURLEnv, defaultLiveFeedBaseURL),
		DestinationID:   getEnvOrDefault(destinationIDEnv, defaultDestinationID),
		CatalogLocation: getEnvOrDefault(catalogLocationEnv, defaultCatalogLocation),
		Timeout:         positiveSeconds(feedTimeoutEnv, defaultFeedTimeout),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
