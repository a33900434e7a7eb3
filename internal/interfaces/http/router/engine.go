package router

import (
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/infrastructure/logger"
	"github.com/bizops/backend/internal/interfaces/http/handler"
	"github.com/bizops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig holds what the middleware stack needs
type EngineConfig struct {
	HTTP    config.HTTPConfig
	Tracing middleware.TracingConfig
	// Meter enables HTTP server metrics when non-nil
	Meter     metric.Meter
	Profiling bool
	// RateLimiter enables per-client rate limiting when non-nil
	RateLimiter       *limiter.Limiter
	IdempotencyStore  shared.IdempotencyStore
	IdempotencyConfig shared.IdempotencyConfig
}

// NewEngine creates a gin engine with the full middleware stack:
//
//  1. RequestID - generate or propagate X-Request-ID
//  2. Recovery - turn panics into 500s
//  3. Tracing - server span, request id attribute, error marking
//  4. Logger - request log line
//  5. Metrics and profiling labels
//  6. Security headers and CORS
//  7. BodyLimit
//  8. RateLimit
//  9. Idempotency - replay retried POSTs
func NewEngine(cfg EngineConfig, log *zap.Logger) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Tracing))
	if cfg.Tracing.Enabled {
		engine.Use(middleware.TracingAttributeInjector(), middleware.SpanErrorMarker())
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(cfg.Meter))
	engine.Use(middleware.Profiling(cfg.Profiling))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow))
	}
	engine.Use(middleware.Idempotency(cfg.IdempotencyStore, cfg.IdempotencyConfig))

	return engine
}

// Handlers groups the HTTP handlers served by the engine
type Handlers struct {
	Health       *handler.HealthHandler
	Currency     *handler.CurrencyHandler
	ExchangeRate *handler.ExchangeRateHandler
	Product      *handler.ProductHandler
	Category     *handler.CategoryHandler
	Stock        *handler.StockHandler
}

// RegisterRoutes mounts /health, /swagger and the /api/v1 groups
func RegisterRoutes(engine *gin.Engine, h Handlers, swagger config.SwaggerConfig) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewRouter(engine).
		Register(CurrencyRoutes(h.Currency, h.ExchangeRate)).
		Register(InventoryRoutes(h.Product, h.Category, h.Stock)).
		Setup()
}
