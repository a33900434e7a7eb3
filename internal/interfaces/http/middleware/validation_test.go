package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bizops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateInput struct {
	CurrencyCode string `json:"currency_code" binding:"required,currency_code"`
	RateDate     string `json:"rate_date" binding:"required,datetime=2006-01-02"`
	Limit        int    `json:"limit" binding:"omitempty,min=1,max=10"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/rates", func(c *gin.Context) {
		var req rateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestValidation(t *testing.T) {
	router := newValidationRouter()

	t.Run("valid body", func(t *testing.T) {
		w := postJSON(router, "/rates", `{"currency_code":"usd","rate_date":"2024-03-01"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		w := postJSON(router, "/rates", `{"currency_code":"US1","rate_date":"01/03/2024","limit":50}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.RequestID)

		byField := map[string]dto.ValidationDetail{}
		for _, d := range resp.Error.Details {
			byField[d.Field] = d
		}
		require.Len(t, byField, 3)
		assert.Equal(t, "Must be a three-letter currency code", byField["currency_code"].Message)
		assert.Equal(t, dto.ErrCodeValidationFormat, byField["rate_date"].Code)
		assert.Equal(t, dto.ErrCodeValidationRange, byField["limit"].Code)
	})

	t.Run("missing field", func(t *testing.T) {
		w := postJSON(router, "/rates", `{"rate_date":"2024-03-01"}`)
		resp := decodeResponse(t, w)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, dto.ErrCodeValidationRequired, resp.Error.Details[0].Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := postJSON(router, "/rates", `{"currency_code":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	})
}

func TestSetupValidator_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		SetupValidator()
		SetupValidator()
	})
}
