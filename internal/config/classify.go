package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	// park time zones must resolve on hosts without a zoneinfo database
	_ "time/tzdata"

	"github.com/KasumiMercury/park-live-board/internal/service/schedule"
	"github.com/KasumiMercury/park-live-board/internal/service/status"
)

const (
	showZeroWaitEnv    = "SHOW_ZERO_WAIT"
	urgencySchemeEnv   = "SHOW_URGENCY_SCHEME"
	parkTimezoneEnv    = "PARK_TIMEZONE"
	liveBeforeStartEnv = "LIVE_BEFORE_START_MINUTES"
	liveAfterStartEnv  = "LIVE_AFTER_START_MINUTES"

	defaultParkTimezone   = "Europe/Paris"
	defaultUrgencyScheme  = schedule.SchemeExtended
	defaultLiveBeforeMins = 5
	defaultLiveAfterMins  = 10
)

type ClassifyConfig struct {
	ShowZeroWait  bool
	UrgencyScheme schedule.UrgencyScheme
	Location      *time.Location
	LiveWindow    schedule.LiveWindow
}

func LoadClassifyConfig() (*ClassifyConfig, error) {
	scheme, err := schedule.SchemeByName(getEnvOrDefault(urgencySchemeEnv, defaultUrgencyScheme))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", urgencySchemeEnv, err)
	}

	tz := getEnvOrDefault(parkTimezoneEnv, defaultParkTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, tz)
	}

	before, err := nonNegativeMinutes(liveBeforeStartEnv, defaultLiveBeforeMins)
	if err != nil {
		return nil, err
	}
	after, err := nonNegativeMinutes(liveAfterStartEnv, defaultLiveAfterMins)
	if err != nil {
		return nil, err
	}

	return &ClassifyConfig{
		ShowZeroWait:  os.Getenv(showZeroWaitEnv) == "true",
		UrgencyScheme: scheme,
		Location:      loc,
		LiveWindow: schedule.LiveWindow{
			BeforeStart: before,
			AfterStart:  after,
		},
	}, nil
}

// Options returns the classifier options with the built-in reservation and
// fixed-price attraction lists.
func (c *ClassifyConfig) Options() status.Options {
	opts := status.DefaultOptions()
	opts.ShowZeroWait = c.ShowZeroWait
	opts.Scheme = c.UrgencyScheme
	opts.LiveWindow = c.LiveWindow
	opts.Location = c.Location
	return opts
}

func nonNegativeMinutes(key string, def int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(def) * time.Minute, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidLiveWindow, key, raw)
	}
	return time.Duration(parsed) * time.Minute, nil
}
