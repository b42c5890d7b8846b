package config

import (
	"os"
	"strconv"
)

const (
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	redisTLSEnv      = "REDIS_TLS"
	redisDisabledEnv = "REDIS_DISABLED"

	defaultRedisAddr = "localhost:6379"
	defaultRedisDB   = 0
)

// RedisConfig configures snapshot persistence. The last snapshot of every
// view is written to Redis after each refresh cycle and read back on startup,
// so a restarted board serves the previous state until its first cycle ends.
// DB selects the logical database holding the snapshot keys. With Disabled
// set the board never connects, runs from memory only and starts empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	Disabled bool
}

// LoadRedisConfig reads the snapshot store settings. A non-numeric or
// negative REDIS_DB is rejected rather than silently falling back to 0, since
// two boards sharing database 0 would overwrite each other's snapshots.
func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	return &RedisConfig{
		Addr:     addr,
		Password: os.Getenv(redisPasswordEnv),
		DB:       db,
		TLS:      os.Getenv(redisTLSEnv) == "true",
		Disabled: os.Getenv(redisDisabledEnv) == "true",
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil {
		return ErrRedisAddrMissing
	}
	if !c.Disabled && c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
