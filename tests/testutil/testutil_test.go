package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB(t *testing.T) {
	db := NewSQLiteDB(t)

	for _, table := range []string{"currencies", "exchange_rates", "categories", "products", "stock_movements"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewMockDB(t *testing.T) {
	m := NewMockDB(t)
	require.NotNil(t, m.DB)
	m.ExpectationsWereMet(t)
}

func TestNewTestUUID(t *testing.T) {
	assert.Equal(t, NewTestUUID("usd"), NewTestUUID("usd"))
	assert.NotEqual(t, NewTestUUID("usd"), NewTestUUID("eur"))
}

func TestTestContext(t *testing.T) {
	tc := NewTestContext(t)
	tc.SetHeader("X-Request-ID", "abc")
	tc.SetParam("code", "USD")

	assert.Equal(t, "abc", tc.Context.GetHeader("X-Request-ID"))
	assert.Equal(t, "USD", tc.Context.Param("code"))

	tc.Context.Status(http.StatusTeapot)
	tc.Context.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusTeapot, tc.ResponseCode())
}

func TestAssertEventually(t *testing.T) {
	start := time.Now()
	AssertEventually(t, func() bool {
		return time.Since(start) > 20*time.Millisecond
	}, time.Second, 5*time.Millisecond)
}

func TestPerformRequest(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		require.NoError(t, c.ShouldBindJSON(&body))
		body["key"] = c.GetHeader("Idempotency-Key")
		c.JSON(http.StatusCreated, dto.NewSuccessResponse(body))
	})
	engine.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "nope"))
	})

	w := PerformRequest(t, engine, http.MethodPost, "/echo", map[string]string{"name": "widget"},
		"Idempotency-Key", "k1")
	data := DecodeData[map[string]string](t, w, http.StatusCreated)
	assert.Equal(t, "widget", data["name"])
	assert.Equal(t, "k1", data["key"])

	w = PerformRequest(t, engine, http.MethodGet, "/missing", nil)
	resp := AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)
	assert.Equal(t, "nope", resp.Error.Message)
}
