package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// Upstream analyzer service (upload + analyze endpoints).
	AnalyzerBaseURL string
	UploadTimeout   time.Duration
	AnalyzeTimeout  time.Duration
	MaxUploadBytes  int64

	// Session storage for per-browser dashboard state.
	SessionStoreType string
	RedisURL         string
	SessionTTL       time.Duration

	// Token-bucket limit on analyze submissions per session.
	AnalyzeRatePerSec float64
	AnalyzeBurst      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		AnalyzerBaseURL:  strings.TrimRight(getEnv("ANALYZER_BASE_URL", "http://localhost:8000"), "/"),
		UploadTimeout:    getDuration("UPLOAD_TIMEOUT", 30*time.Second),
		AnalyzeTimeout:   getDuration("ANALYZE_TIMEOUT", 120*time.Second),
		MaxUploadBytes:   getInt64("MAX_UPLOAD_BYTES", 5<<20),
		SessionStoreType: normalizeStoreType(getEnv("SESSION_STORE", "memory")),
		RedisURL:         getEnv("REDIS_URL", ""),
		SessionTTL:       getDuration("SESSION_TTL", 12*time.Hour),

		AnalyzeRatePerSec: getFloat("ANALYZE_RATE_PER_SEC", 1),
		AnalyzeBurst:      int(getInt64("ANALYZE_BURST", 5)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		return parsed
	}
	return def
}

func getInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
		return parsed
	}
	return def
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
		return parsed
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "redis":
		return "redis"
	default:
		return "memory"
	}
}
