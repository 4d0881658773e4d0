package bootstrap

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/dashboard"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/telemetry"
)

func baseConfig() config.Config {
	return config.Config{
		Port:            "8080",
		AnalyzerBaseURL: "http://localhost:8000",
		SessionTTL:      time.Hour,
		MaxUploadBytes:  1 << 20,
	}
}

func TestBuildDevFallsBackToMemoryStoreWithWarn(t *testing.T) {
	var logged bytes.Buffer
	prev := telemetry.Output
	telemetry.Output = &logged
	t.Cleanup(func() { telemetry.Output = prev })

	cfg := baseConfig()
	cfg.Env = "dev"
	cfg.SessionStoreType = "redis"
	cfg.RedisURL = ""

	app, err := Build(cfg)
	require.NoError(t, err)
	assert.IsType(t, &dashboard.MemoryStore{}, app.SessionStore)
	assert.Contains(t, logged.String(), "bootstrap.session_store.fallback")
	assert.Contains(t, logged.String(), `"level":"warn"`)
}

func TestBuildProductionRequiresRedisURL(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.SessionStoreType = "redis"
	cfg.RedisURL = ""

	_, err := Build(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")
}

func TestBuildRequiresAnalyzerBaseURL(t *testing.T) {
	cfg := baseConfig()
	cfg.AnalyzerBaseURL = "   "

	_, err := Build(cfg)
	require.Error(t, err)
}
