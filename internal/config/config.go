package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	LogLevel           string
	RedisAddr          string
	CacheTTL           time.Duration
	CacheFlushSchedule string
	TermYears          int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		CacheFlushSchedule: getEnv("CACHE_FLUSH_SCHEDULE", "0 3 * * *"),
	}

	termYears, err := strconv.Atoi(getEnv("TERM_YEARS", "30"))
	if err != nil || termYears <= 0 {
		return nil, fmt.Errorf("TERM_YEARS must be a positive integer")
	}
	cfg.TermYears = termYears

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
