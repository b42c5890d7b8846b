package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel slog.Level
	Feed     *FeedConfig
	Refresh  *RefreshConfig
	Redis    *RedisConfig
	Classify *ClassifyConfig
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; variables already set
// in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	classifyConfig, err := LoadClassifyConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		Feed:     LoadFeedConfig(),
		Refresh:  LoadRefreshConfig(),
		Redis:    redisConfig,
		Classify: classifyConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// positiveSeconds reads a whole number of seconds from key, falling back
// to def when unset or not a positive integer.
func positiveSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return def
}
