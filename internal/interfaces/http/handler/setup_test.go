package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	currencyapp "github.com/bizops/backend/internal/application/currency"
	inventoryapp "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/infrastructure/persistence"
	"github.com/bizops/backend/internal/infrastructure/storage"
	"github.com/bizops/backend/internal/interfaces/http/handler"
	"github.com/bizops/backend/internal/interfaces/http/middleware"
	"github.com/bizops/backend/internal/interfaces/http/router"
	"github.com/bizops/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// today is the resolver's notion of the current date in these tests
var today = testutil.Day(2024, 3, 15)

type testServer struct {
	engine  *gin.Engine
	db      *gorm.DB
	reports *storage.MemoryReportStorage
	dbPing  error
}

// newTestServer wires the real services over an in-memory SQLite database
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	log := zap.NewNop()

	currencyRepo := persistence.NewGormCurrencyRepository(db)
	rateRepo := persistence.NewGormExchangeRateRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	movementRepo := persistence.NewGormStockMovementRepository(db)

	resolver := currencyapp.NewRateResolver(currencyRepo, rateRepo, log,
		currencyapp.WithClock(func() time.Time { return today.Add(10 * time.Hour) }))
	currencyService := currencyapp.NewCurrencyService(currencyRepo, rateRepo, resolver, log)
	ledger := inventoryapp.NewStockLedger(productRepo, movementRepo,
		persistence.NewGormStockTransactionScope(db), log, nil)
	productService := inventoryapp.NewProductService(productRepo, categoryRepo, log)
	categoryService := inventoryapp.NewCategoryService(categoryRepo, log)
	reports := storage.NewMemoryReportStorage("/api/v1/inventory/alerts/exports", 5)
	exporter := inventoryapp.NewAlertExporter(ledger, reports, inventoryapp.DefaultAlertExporterConfig(), log)

	srv := &testServer{db: db, reports: reports}
	health := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": handler.PingFunc(func(context.Context) error { return srv.dbPing }),
		"redis":    nil,
	})

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.RegisterRoutes(engine, router.Handlers{
		Health:       health,
		Currency:     handler.NewCurrencyHandler(currencyService),
		ExchangeRate: handler.NewExchangeRateHandler(resolver, currencyService),
		Product:      handler.NewProductHandler(productService, ledger),
		Category:     handler.NewCategoryHandler(categoryService),
		Stock:        handler.NewStockHandler(ledger, exporter, reports),
	}, config.SwaggerConfig{})
	srv.engine = engine
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.PerformRequest(t, s.engine, method, path, body, headers...)
}

// mustCreate posts body and requires a 201
func (s *testServer) mustCreate(t *testing.T, path string, body any) {
	t.Helper()
	w := s.do(t, http.MethodPost, path, body)
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		t.Fatalf("POST %s: status %d, body %s", path, w.Code, w.Body.String())
	}
}
