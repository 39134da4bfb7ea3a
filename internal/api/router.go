package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/nbpstat/internal/metrics"
	"github.com/guttosm/nbpstat/internal/middleware"
)

// RouterConfig tunes the per-request middlewares.
type RouterConfig struct {
	RequestTimeout time.Duration // default 30s
	RateLimit      float64       // requests per second per client IP, default 2
	RateBurst      int           // default 10
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 2
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 10
	}
	return c
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, Metrics).
//   - Mounts /metrics and the Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1) behind the rate limiter and request timeout.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	cfg = cfg.withDefaults()
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
	)

	// ─── Observability ────────────────────────────
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1",
		middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst),
		middleware.Timeout(cfg.RequestTimeout),
	)
	{
		v1.GET("/orders", handler.ListOrders)
		v1.GET("/orders/:kind", handler.RunOrder)
		v1.GET("/runs", handler.ListRuns)
	}

	return router
}
