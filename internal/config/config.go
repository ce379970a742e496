package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"ENV" default:"dev"`

	LogLevel string `env:"LOG_LEVEL" default:"info"` // debug | info | warn | error

	CacheBackend string        `env:"CACHE_BACKEND" default:"memory"` // memory | expiring
	CacheTTL     time.Duration `env:"CACHE_TTL" default:"10m"`        // used when CACHE_BACKEND=expiring
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:          getenv("ENV", "dev"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		CacheBackend: getenv("CACHE_BACKEND", "memory"),
		CacheTTL:     getenvDuration("CACHE_TTL", 10*time.Minute),
	}
	return cfg
}

func getenv(key string, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
