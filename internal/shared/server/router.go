package server

import (
	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/dashboard"
	"resume-dashboard/internal/services/health"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/server/middleware"
	"resume-dashboard/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config    config.Config
	Dashboard *dashboard.Handler
	Health    *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(deps.Config.SessionTTL),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status(c.Request.Context()))
	})

	analyzeLimit := middleware.RateLimit(middleware.RateLimitRule{
		Rate:  deps.Config.AnalyzeRatePerSec,
		Burst: deps.Config.AnalyzeBurst,
	}, middleware.NewRateLimiter(nil))
	deps.Dashboard.RegisterRoutes(r, analyzeLimit)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
