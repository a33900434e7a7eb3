package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	currencyapp "github.com/bizops/backend/internal/application/currency"
	inventoryapp "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/cache"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/infrastructure/logger"
	"github.com/bizops/backend/internal/infrastructure/persistence"
	"github.com/bizops/backend/internal/infrastructure/storage"
	"github.com/bizops/backend/internal/infrastructure/telemetry"
	"github.com/bizops/backend/internal/interfaces/http/handler"
	"github.com/bizops/backend/internal/interfaces/http/middleware"
	"github.com/bizops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"go.uber.org/zap"

	_ "github.com/bizops/backend/docs"
)

//go:generate swag init -d ../../ -g cmd/server/main.go -o ../../docs --parseInternal

//	@title			BizOps Backend API
//	@version		1.0
//	@description	Multi-currency exchange rates and ledger based stock tracking

//	@host		localhost:8080
//	@BasePath	/api/v1

const exportsPath = "/api/v1/inventory/alerts/exports"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := baseLog
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()
	tel := cfg.Telemetry

	// Telemetry: traces, logs, metrics, profiles
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           tel.Enabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		SamplingRatio:     tel.SamplingRatio,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           tel.Enabled && tel.LogsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
		Level:             tel.LogsLevel,
	}, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = loggerProvider.Bridge(baseLog)

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           tel.Enabled && tel.MetricsEnabled,
		CollectorEndpoint: tel.CollectorEndpoint,
		ExportInterval:    tel.MetricsExportInterval,
		ServiceName:       tel.ServiceName,
		Insecure:          tel.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	meter := meterProvider.Meter(tel.ServiceName)
	businessMetrics, err := telemetry.NewBusinessMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create business metrics", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           tel.ProfilingEnabled,
		ServerAddress:     tel.ProfilingServerAddress,
		ApplicationName:   tel.ServiceName,
		BasicAuthUser:     tel.ProfilingAuthUser,
		BasicAuthPassword: tel.ProfilingAuthPassword,
		ProfileTypes:      tel.ProfilingTypes,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	log.Info("Starting BizOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(tel.DBSlowQueryThresh), logger.WithFullSQL(tel.DBLogFullSQL))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         tel.Enabled && tel.DBTraceEnabled,
		LogFullSQL:      tel.DBLogFullSQL,
		SlowQueryThresh: tel.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis backs idempotency keys and rate limits when enabled
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}
	idempotencyStore := cache.NewIdempotencyStore(redisClient, cfg.Idempotency, log)

	// Alert reports go to object storage, or stay in memory without it
	var (
		alertStorage inventoryapp.AlertStorage
		reports      handler.ReportReader
	)
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ReportStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to configure report storage", zap.Error(err))
		}
		if cfg.Storage.CreateBucket {
			if err := s3Storage.EnsureBucket(ctx); err != nil {
				log.Fatal("Failed to prepare report bucket", zap.Error(err))
			}
		}
		alertStorage = s3Storage
	} else {
		memStorage := storage.NewMemoryReportStorage(exportsPath, 0)
		alertStorage, reports = memStorage, memStorage
		log.Warn("Object storage disabled, alert exports are kept in memory")
	}

	// Repositories
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	rateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	stockScope := persistence.NewGormStockTransactionScope(db.DB)

	// Application services
	resolver := currencyapp.NewRateResolver(currencyRepo, rateRepo, log, currencyapp.WithMetrics(businessMetrics))
	currencyService := currencyapp.NewCurrencyService(currencyRepo, rateRepo, resolver, log)
	ledger := inventoryapp.NewStockLedger(productRepo, movementRepo, stockScope, log, businessMetrics)
	productService := inventoryapp.NewProductService(productRepo, categoryRepo, log)
	categoryService := inventoryapp.NewCategoryService(categoryRepo, log)
	exporterConfig := inventoryapp.DefaultAlertExporterConfig()
	if cfg.Storage.PresignExpiration > 0 {
		exporterConfig.DownloadURLExpiry = cfg.Storage.PresignExpiration
	}
	exporter := inventoryapp.NewAlertExporter(ledger, alertStorage, exporterConfig, log)

	// HTTP
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var rateLimiter *limiter.Limiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter, err = middleware.NewRateLimiter(cfg.HTTP, redisClient)
		if err != nil {
			log.Fatal("Failed to create rate limiter", zap.Error(err))
		}
	}

	tracingConfig := middleware.DefaultTracingConfig()
	tracingConfig.Enabled = tel.Enabled
	if tel.ServiceName != "" {
		tracingConfig.ServiceName = tel.ServiceName
	}

	engineConfig := router.EngineConfig{
		HTTP:             cfg.HTTP,
		Tracing:          tracingConfig,
		Profiling:        profiler.IsEnabled(),
		RateLimiter:      rateLimiter,
		IdempotencyStore: idempotencyStore,
		IdempotencyConfig: shared.IdempotencyConfig{
			Enabled: cfg.Idempotency.Enabled,
			TTL:     cfg.Idempotency.TTL,
		},
	}
	if meterProvider.IsEnabled() {
		engineConfig.Meter = meter
	}
	engine := router.NewEngine(engineConfig, log)

	healthChecks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		healthChecks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	router.RegisterRoutes(engine, router.Handlers{
		Health:       handler.NewHealthHandler(healthChecks),
		Currency:     handler.NewCurrencyHandler(currencyService),
		ExchangeRate: handler.NewExchangeRateHandler(resolver, currencyService),
		Product:      handler.NewProductHandler(productService, ledger),
		Category:     handler.NewCategoryHandler(categoryService),
		Stock:        handler.NewStockHandler(ledger, exporter, reports),
	}, cfg.Swagger)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownTimeout := cfg.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := idempotencyStore.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	log.Info("Server exited gracefully")
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		baseLog.Error("Error shutting down logger provider", zap.Error(err))
	}
}
