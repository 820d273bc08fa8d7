package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds dashboard server configuration
type Config struct {
	Addr       string
	BackendURL string
	Token      string

	RedisAddr string
	CacheTTL  time.Duration

	SentryDSN string

	// RecentBuckets is how many buckets a collapsed timeframe view shows
	RecentBuckets int

	AllowedOrigins []string
}

func loadConfig() *Config {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	return &Config{
		Addr:       getEnv("DASHD_ADDR", ":8080"),
		BackendURL: getEnv("BACKEND_URL", "http://localhost:3000"),
		Token:      getEnv("BACKEND_TOKEN", ""),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		CacheTTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),

		SentryDSN: getEnv("SENTRY_DSN", ""),

		RecentBuckets: getEnvInt("RECENT_BUCKETS", 1),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
