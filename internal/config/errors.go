package config

import "errors"

var (
	ErrRedisAddrMissing     = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone      = errors.New("PARK_TIMEZONE must be a valid IANA time zone")
	ErrInvalidLiveWindow    = errors.New("live window minutes must be non-negative integers")
	ErrFeedBaseURLInvalid   = errors.New("LIVE_FEED_BASE_URL must be an absolute http(s) URL")
	ErrDestinationIDMissing = errors.New("DESTINATION_ID is required")
	ErrCatalogMissing       = errors.New("CATALOG_LOCATION is required")
)
