package handler

import (
	currencyapp "github.com/bizops/backend/internal/application/currency"
	"github.com/gin-gonic/gin"
)

// CurrencyHandler handles currency management endpoints
type CurrencyHandler struct {
	BaseHandler
	currencyService *currencyapp.CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(currencyService *currencyapp.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// List godoc
// @ID           listCurrencies
// @Summary      List currencies
// @Description  List currencies ordered by code
// @Tags         currencies
// @Produce      json
// @Param        search query string false "Code or name contains"
// @Param        active_only query bool false "Only active currencies"
// @Success      200 {object} APIResponse[[]currencyapp.CurrencyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /currency/currencies [get]
func (h *CurrencyHandler) List(c *gin.Context) {
	var filter currencyapp.CurrencyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	currencies, err := h.currencyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, currencies)
}

// Create godoc
// @ID           createCurrency
// @Summary      Create a currency
// @Description  Create a currency. decimal_places defaults to 2, or to the ISO 4217 minor unit when iso_decimals=true. is_base=true makes it the base currency.
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for retried requests"
// @Param        request body currencyapp.CreateCurrencyRequest true "Currency"
// @Success      201 {object} APIResponse[currencyapp.CurrencyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /currency/currencies [post]
func (h *CurrencyHandler) Create(c *gin.Context) {
	var req currencyapp.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.currencyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get godoc
// @ID           getCurrency
// @Summary      Get a currency
// @Tags         currencies
// @Produce      json
// @Param        code path string true "ISO style code" example(USD)
// @Success      200 {object} APIResponse[currencyapp.CurrencyResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /currency/currencies/{code} [get]
func (h *CurrencyHandler) Get(c *gin.Context) {
	resp, err := h.currencyService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
// @ID           updateCurrency
// @Summary      Update a currency
// @Description  Partial update. is_base=true switches the base currency; clearing the flag on the base is rejected.
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        code path string true "Currency code"
// @Param        request body currencyapp.UpdateCurrencyRequest true "Fields to change"
// @Success      200 {object} APIResponse[currencyapp.CurrencyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /currency/currencies/{code} [put]
func (h *CurrencyHandler) Update(c *gin.Context) {
	var req currencyapp.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.currencyService.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate godoc
// @ID           deactivateCurrency
// @Summary      Deactivate a currency
// @Description  Soft-delete. The base currency cannot be deactivated.
// @Tags         currencies
// @Param        code path string true "Currency code"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /currency/currencies/{code} [delete]
func (h *CurrencyHandler) Deactivate(c *gin.Context) {
	if err := h.currencyService.Deactivate(c.Request.Context(), c.Param("code")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// SetBase godoc
// @ID           setBaseCurrency
// @Summary      Make a currency the base currency
// @Description  Atomically moves the base flag; exactly one currency is base afterwards.
// @Tags         currencies
// @Produce      json
// @Param        code path string true "Currency code"
// @Success      200 {object} APIResponse[currencyapp.CurrencyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /currency/currencies/{code}/base [post]
func (h *CurrencyHandler) SetBase(c *gin.Context) {
	resp, err := h.currencyService.SetBase(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetBase godoc
// @ID           getBaseCurrency
// @Summary      Get the base currency
// @Tags         currencies
// @Produce      json
// @Success      200 {object} APIResponse[currencyapp.CurrencyResponse]
// @Failure      409 {object} ErrorResponse "No base currency configured"
// @Router       /currency/base [get]
func (h *CurrencyHandler) GetBase(c *gin.Context) {
	resp, err := h.currencyService.GetBase(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
