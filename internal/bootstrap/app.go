package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/dashboard"
	"resume-dashboard/internal/services/health"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/server"
	"resume-dashboard/internal/shared/storage/db"
	"resume-dashboard/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Analyzer         *analyzer.Client
	SessionStore     dashboard.Store
	DashboardService *dashboard.Service
	DashboardHandler *dashboard.Handler
	HealthService    *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	client, err := analyzer.NewClient(cfg.AnalyzerBaseURL, cfg.UploadTimeout, cfg.AnalyzeTimeout)
	if err != nil {
		return nil, err
	}

	store, err := buildSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := dashboard.NewService(client, store)
	handler := dashboard.NewHandler(svc, cfg.MaxUploadBytes)
	healthSvc := health.NewService(client)

	app := &App{
		Config:           cfg,
		Analyzer:         client,
		SessionStore:     store,
		DashboardService: svc,
		DashboardHandler: handler,
		HealthService:    healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Dashboard: handler,
		Health:    healthSvc,
	})

	return app, nil
}

func buildSessionStore(ctx context.Context, cfg config.Config) (dashboard.Store, error) {
	if cfg.SessionStoreType != "redis" {
		return dashboard.NewMemoryStore(cfg.SessionTTL), nil
	}

	if strings.TrimSpace(cfg.RedisURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.session_store.fallback", map[string]any{
				"reason": "REDIS_URL empty",
				"store":  "memory",
			})
			return dashboard.NewMemoryStore(cfg.SessionTTL), nil
		}
		return nil, fmt.Errorf("SESSION_STORE=redis requires REDIS_URL")
	}

	client, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.session_store.fallback", map[string]any{
				"reason": "redis connect failed",
				"store":  "memory",
				"err":    err.Error(),
			})
			return dashboard.NewMemoryStore(cfg.SessionTTL), nil
		}
		return nil, err
	}

	return dashboard.NewRedisStore(client, cfg.SessionTTL), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
