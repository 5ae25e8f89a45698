package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/config"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
// Resolving a page of favorites can take many upstream calls, so it is
// generous.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger stored in every request context.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	QuoteHandler     *handlers.QuoteHandler
	FavoritesHandler *handlers.FavoritesHandler
	ShareHandler     *handlers.ShareHandler

	// Timeout is the deadline applied to /api/v1 requests.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - request-scoped slog.Logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - handle distributed tracing correlation
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - /-/ (internal): Health and metrics endpoints, no timeout
//   - /api/v1/ (public API): quotes, favorites and share, with timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "daily-wisdom"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(serviceName),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.RequestTimeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes. Nil handlers are skipped.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.FavoritesHandler != nil {
		cfg.FavoritesHandler.RegisterFavoritesRoutes(rg)
	}

	if cfg.ShareHandler != nil {
		cfg.ShareHandler.RegisterShareRoutes(rg)
	}
}
