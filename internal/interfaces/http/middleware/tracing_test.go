package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedRouter(recorder *tracetest.SpanRecorder) *gin.Engine {
	cfg := DefaultTracingConfig()
	cfg.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	router := gin.New()
	router.Use(RequestID(), Tracing(cfg), TracingAttributeInjector(), SpanErrorMarker())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/currency/rates/:code", func(c *gin.Context) {
		switch c.Param("code") {
		case "ZZZ":
			c.Set(ErrorCodeKey, "ERR_RATE_NOT_FOUND")
			c.Status(http.StatusNotFound)
		case "ERR":
			c.Status(http.StatusInternalServerError)
		default:
			c.Status(http.StatusOK)
		}
	})
	return router
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	t.Run("tags the span with the request ID", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/currency/rates/USD", nil)
		req.Header.Set(RequestIDHeader, "trace-req-1")
		newTracedRouter(recorder).ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		v, ok := spanAttr(spans[0], "request_id")
		require.True(t, ok)
		assert.Equal(t, "trace-req-1", v.AsString())
		assert.Equal(t, codes.Unset, spans[0].Status().Code)
	})

	t.Run("client error records the code but not an error status", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		newTracedRouter(recorder).ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/api/v1/currency/rates/ZZZ", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		v, ok := spanAttr(spans[0], "error.code")
		require.True(t, ok)
		assert.Equal(t, "ERR_RATE_NOT_FOUND", v.AsString())
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("server error marks the span", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		newTracedRouter(recorder).ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/api/v1/currency/rates/ERR", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("health checks are not traced", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		newTracedRouter(recorder).ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, recorder.Ended())
	})

	t.Run("disabled", func(t *testing.T) {
		router := gin.New()
		router.Use(Tracing(TracingConfig{Enabled: false}))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
