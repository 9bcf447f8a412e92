package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the service reads from the environment.
// A .env file loaded by the caller (godotenv) feeds the same variables
// during local development.
type Config struct {
	Port     string `env:"PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	SkyScanner SkyScannerConfig
	Cache      CacheConfig

	// StatsEnabled turns on price-query counting in route responses.
	StatsEnabled bool `env:"STATS_ENABLED" env-default:"false"`
}

type SkyScannerConfig struct {
	APIKey  string `env:"SKYSCANNER_API_KEY"`
	BaseURL string `env:"SKYSCANNER_BASE_URL"`
}

// CacheConfig selects the persistent quote-cache backend.
// Backend is one of: sqlite, postgres, redis, none.
type CacheConfig struct {
	Backend     string        `env:"CACHE_BACKEND" env-default:"sqlite"`
	SqlitePath  string        `env:"SQLITE_PATH" env-default:"data/quotes.db"`
	PostgresDSN string        `env:"DATABASE_URL"`
	RedisAddr   string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisTTL    time.Duration `env:"REDIS_TTL" env-default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}

	switch cfg.Cache.Backend {
	case "sqlite", "postgres", "redis", "none":
	default:
		return nil, fmt.Errorf("config: unknown CACHE_BACKEND %q", cfg.Cache.Backend)
	}

	return &cfg, nil
}
