package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	currencyapp "github.com/bizops/backend/internal/application/currency"
	inventoryapp "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/cache"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/infrastructure/persistence"
	"github.com/bizops/backend/internal/infrastructure/storage"
	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/bizops/backend/internal/interfaces/http/handler"
	"github.com/bizops/backend/internal/interfaces/http/middleware"
	"github.com/bizops/backend/internal/interfaces/http/router"
	"github.com/bizops/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestServer is the production engine wired over the test database
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer builds the full middleware stack and routes
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	db := testDB.DB
	log := zap.NewNop()

	currencyRepo := persistence.NewGormCurrencyRepository(db)
	rateRepo := persistence.NewGormExchangeRateRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	movementRepo := persistence.NewGormStockMovementRepository(db)

	resolver := currencyapp.NewRateResolver(currencyRepo, rateRepo, log)
	currencyService := currencyapp.NewCurrencyService(currencyRepo, rateRepo, resolver, log)
	ledger := inventoryapp.NewStockLedger(productRepo, movementRepo,
		persistence.NewGormStockTransactionScope(db), log, nil)
	reports := storage.NewMemoryReportStorage("/api/v1/inventory/alerts/exports", 0)
	exporter := inventoryapp.NewAlertExporter(ledger, reports, inventoryapp.DefaultAlertExporterConfig(), log)

	engine := router.NewEngine(router.EngineConfig{
		HTTP:              config.HTTPConfig{MaxBodySize: 1 << 20},
		Tracing:           middleware.TracingConfig{Enabled: false},
		IdempotencyStore:  cache.NewInMemoryIdempotencyStore(),
		IdempotencyConfig: shared.IdempotencyConfig{Enabled: true, TTL: time.Minute},
	}, log)

	sqlDB := testDB.SqlDB
	router.RegisterRoutes(engine, router.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": handler.PingFunc(sqlDB.PingContext),
		}),
		Currency:     handler.NewCurrencyHandler(currencyService),
		ExchangeRate: handler.NewExchangeRateHandler(resolver, currencyService),
		Product:      handler.NewProductHandler(inventoryapp.NewProductService(productRepo, categoryRepo, log), ledger),
		Category:     handler.NewCategoryHandler(inventoryapp.NewCategoryService(categoryRepo, log)),
		Stock:        handler.NewStockHandler(ledger, exporter, reports),
	}, config.SwaggerConfig{})

	return &TestServer{DB: testDB, Engine: engine}
}

func (s *TestServer) Do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.PerformRequest(t, s.Engine, method, path, body, headers...)
}

func TestAPI_Health(t *testing.T) {
	srv := NewTestServer(t)
	w := srv.Do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAPI_CurrencyConversion(t *testing.T) {
	srv := NewTestServer(t)

	for _, body := range []map[string]any{
		{"code": "TRY", "name": "Turkish Lira", "is_base": true},
		{"code": "USD", "name": "US Dollar"},
		{"code": "EUR", "name": "Euro"},
	} {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/currencies", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	for _, body := range []map[string]any{
		{"currency_code": "USD", "buy_rate": "30", "sell_rate": "32", "rate_date": "2024-03-01"},
		{"currency_code": "EUR", "buy_rate": "33", "sell_rate": "35", "rate_date": "2024-03-10"},
	} {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/rates", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	t.Run("cross conversion through the base", func(t *testing.T) {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/convert", map[string]any{
			"amount": "100", "from": "USD", "to": "EUR", "as_of": "2024-03-15",
		})
		conv := testutil.DecodeData[currencyapp.ConversionResponse](t, w, http.StatusOK)
		assert.Equal(t, "85.7143", conv.ConvertedAmount.String())
		assert.Equal(t, "2024-03-01", conv.DateUsed)
	})

	t.Run("date before every rate", func(t *testing.T) {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/convert", map[string]any{
			"amount": "1", "from": "USD", "to": "TRY", "as_of": "2024-02-01",
		})
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeRateNotFound)
	})

	t.Run("upsert replaces the row in place", func(t *testing.T) {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/rates", map[string]any{
			"currency_code": "USD", "buy_rate": "31", "sell_rate": "32", "rate_date": "2024-03-01",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, srv.DB.DB.Table("exchange_rates").Where("currency_code = ?", "USD").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("switching the base keeps exactly one", func(t *testing.T) {
		w := srv.Do(t, http.MethodPost, "/api/v1/currency/currencies/USD/base", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var bases []string
		require.NoError(t, srv.DB.DB.Table("currencies").Where("is_base").Pluck("code", &bases).Error)
		assert.Equal(t, []string{"USD"}, bases)
	})
}

func TestAPI_IdempotentMovement(t *testing.T) {
	srv := NewTestServer(t)

	w := srv.Do(t, http.MethodPost, "/api/v1/inventory/products", map[string]any{
		"code": "BOLT", "name": "Bolt", "unit": "pcs", "critical_stock_level": 1,
	})
	product := testutil.DecodeData[inventoryapp.ProductResponse](t, w, http.StatusCreated)

	body := map[string]any{"product_id": product.ID, "movement_type": "in", "quantity": 7}
	first := srv.Do(t, http.MethodPost, "/api/v1/inventory/movements", body, "Idempotency-Key", "receipt-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	replay := srv.Do(t, http.MethodPost, "/api/v1/inventory/movements", body, "Idempotency-Key", "receipt-1")
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, first.Body.String(), replay.Body.String())

	w = srv.Do(t, http.MethodGet, "/api/v1/inventory/products/"+product.ID.String()+"/stock", nil)
	summary := testutil.DecodeData[inventoryapp.StockSummaryResponse](t, w, http.StatusOK)
	assert.Equal(t, int64(7), summary.Stock)
}
