package config

import (
	"errors"
	"fmt"
	"net/url"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if u, err := url.Parse(cfg.Feed.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ErrFeedBaseURLInvalid)
	}
	if cfg.Feed.DestinationID == "" {
		errs = append(errs, ErrDestinationIDMissing)
	}
	if cfg.Feed.CatalogLocation == "" {
		errs = append(errs, ErrCatalogMissing)
	}
	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
