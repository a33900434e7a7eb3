package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/cache"
	"github.com/bizops/backend/internal/infrastructure/config"
	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/bizops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, httpCfg config.HTTPConfig) (*gin.Engine, *atomic.Int32) {
	t.Helper()

	cfg := EngineConfig{
		HTTP:              httpCfg,
		Tracing:           middleware.TracingConfig{Enabled: false},
		IdempotencyStore:  cache.NewInMemoryIdempotencyStore(),
		IdempotencyConfig: shared.IdempotencyConfig{Enabled: true, TTL: time.Minute},
	}
	if httpCfg.RateLimitEnabled {
		l, err := middleware.NewRateLimiter(httpCfg, nil)
		require.NoError(t, err)
		cfg.RateLimiter = l
	}
	engine := NewEngine(cfg, zap.NewNop())

	var created atomic.Int32
	g := NewDomainGroup("test", "/test")
	g.POST("/things", func(c *gin.Context) {
		n := created.Add(1)
		c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"n": n}))
	})
	g.GET("/panic", func(*gin.Context) { panic("boom") })
	NewRouter(engine).Register(g).Setup()
	return engine, &created
}

func post(engine *gin.Engine, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewEngine_Stack(t *testing.T) {
	engine, created := newTestEngine(t, config.HTTPConfig{MaxBodySize: 64})

	t.Run("request id and security headers", func(t *testing.T) {
		w := post(engine, "/api/v1/test/things", "{}", middleware.RequestIDHeader, "req-123")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("idempotent replay", func(t *testing.T) {
		before := created.Load()
		first := post(engine, "/api/v1/test/things", "{}", middleware.IdempotencyKeyHeader, "k-1")
		second := post(engine, "/api/v1/test/things", "{}", middleware.IdempotencyKeyHeader, "k-1")

		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get(middleware.IdempotentReplayHeader))
		assert.Equal(t, before+1, created.Load())
	})

	t.Run("body limit", func(t *testing.T) {
		w := post(engine, "/api/v1/test/things", `{"padding":"`+strings.Repeat("x", 100)+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodePayloadTooLarge)
	})

	t.Run("panics become 500 with the request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/test/panic", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-panic")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "req-panic")
	})
}

func TestNewEngine_RateLimit(t *testing.T) {
	engine, _ := newTestEngine(t, config.HTTPConfig{
		RateLimitEnabled:  true,
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})

	assert.Equal(t, http.StatusCreated, post(engine, "/api/v1/test/things", "{}").Code)
	assert.Equal(t, http.StatusCreated, post(engine, "/api/v1/test/things", "{}").Code)
	w := post(engine, "/api/v1/test/things", "{}")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodeRateLimited)
}
