package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/service/schedule"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}
	if cfg.Feed.BaseURL != defaultLiveFeedBaseURL {
		t.Errorf("Feed.BaseURL = %q, want %q", cfg.Feed.BaseURL, defaultLiveFeedBaseURL)
	}
	if cfg.Feed.DestinationID != defaultDestinationID {
		t.Errorf("Feed.DestinationID = %q, want %q", cfg.Feed.DestinationID, defaultDestinationID)
	}
	if cfg.Classify.Location.String() != "Europe/Paris" {
		t.Errorf("Classify.Location = %v, want Europe/Paris", cfg.Classify.Location)
	}
	if cfg.Classify.UrgencyScheme.Name != schedule.SchemeExtended {
		t.Errorf("Classify.UrgencyScheme = %q, want %q", cfg.Classify.UrgencyScheme.Name, schedule.SchemeExtended)
	}
	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("ValidateForRun() error = %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHOW_ZERO_WAIT", "true")
	t.Setenv("SHOW_URGENCY_SCHEME", "compact")
	t.Setenv("PARK_TIMEZONE", "UTC")
	t.Setenv("LIVE_BEFORE_START_MINUTES", "0")
	t.Setenv("LIVE_AFTER_START_MINUTES", "20")
	t.Setenv("MAP_REFRESH_SECONDS", "15")
	t.Setenv("SHOWS_REFRESH_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelDebug)
	}

	opts := cfg.Classify.Options()
	if !opts.ShowZeroWait {
		t.Error("ShowZeroWait = false, want true")
	}
	if opts.Scheme.Name != schedule.SchemeCompact {
		t.Errorf("Scheme = %q, want %q", opts.Scheme.Name, schedule.SchemeCompact)
	}
	if opts.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", opts.Location)
	}
	if opts.LiveWindow.BeforeStart != 0 || opts.LiveWindow.AfterStart != 20*time.Minute {
		t.Errorf("LiveWindow = %+v, want 0m/20m", opts.LiveWindow)
	}
	if len(opts.FixedLabels) == 0 {
		t.Error("Options() dropped the fixed label list")
	}

	tests := []struct {
		view domain.View
		want time.Duration
	}{
		{view: domain.ViewMap, want: 15 * time.Second},
		{view: domain.ViewAttractions, want: defaultAttractionsRefresh},
		{view: domain.ViewShows, want: defaultShowsRefresh},
		{view: domain.View("parking"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			if got := cfg.Refresh.Interval(tt.view); got != tt.want {
				t.Errorf("Interval(%s) = %v, want %v", tt.view, got, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "invalid redis db", key: "REDIS_DB", value: "zero", wantErr: ErrInvalidRedisDB},
		{name: "negative redis db", key: "REDIS_DB", value: "-1", wantErr: ErrInvalidRedisDB},
		{name: "invalid timezone", key: "PARK_TIMEZONE", value: "Mars/Olympus", wantErr: ErrInvalidTimezone},
		{name: "unknown scheme", key: "SHOW_URGENCY_SCHEME", value: "relaxed", wantErr: schedule.ErrUnknownScheme},
		{name: "negative live window", key: "LIVE_AFTER_START_MINUTES", value: "-1", wantErr: ErrInvalidLiveWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRun(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Feed:  &FeedConfig{BaseURL: defaultLiveFeedBaseURL, DestinationID: "dest", CatalogLocation: "points.json"},
			Redis: &RedisConfig{Addr: "localhost:6379"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "relative base url", mutate: func(c *Config) { c.Feed.BaseURL = "/v1" }, wantErr: ErrFeedBaseURLInvalid},
		{name: "unsupported scheme", mutate: func(c *Config) { c.Feed.BaseURL = "ftp://example.com" }, wantErr: ErrFeedBaseURLInvalid},
		{name: "missing destination", mutate: func(c *Config) { c.Feed.DestinationID = "" }, wantErr: ErrDestinationIDMissing},
		{name: "missing catalog", mutate: func(c *Config) { c.Feed.CatalogLocation = "" }, wantErr: ErrCatalogMissing},
		{name: "missing redis addr", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: ErrRedisAddrMissing},
		{name: "redis disabled without addr", mutate: func(c *Config) { c.Redis.Addr = ""; c.Redis.Disabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := ValidateForRun(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateForRun() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForRun() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "WARN", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
