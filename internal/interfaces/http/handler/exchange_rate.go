package handler

import (
	"time"

	currencyapp "github.com/bizops/backend/internal/application/currency"
	"github.com/bizops/backend/internal/domain/currency"
	"github.com/gin-gonic/gin"
)

// ExchangeRateHandler handles rate lookup, ingestion and conversion endpoints
type ExchangeRateHandler struct {
	BaseHandler
	resolver        *currencyapp.RateResolver
	currencyService *currencyapp.CurrencyService
}

// NewExchangeRateHandler creates a new ExchangeRateHandler
func NewExchangeRateHandler(resolver *currencyapp.RateResolver, currencyService *currencyapp.CurrencyService) *ExchangeRateHandler {
	return &ExchangeRateHandler{resolver: resolver, currencyService: currencyService}
}

// parseAsOf parses an optional YYYY-MM-DD date; empty means today
func parseAsOf(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := currency.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Resolve godoc
// @ID           resolveRate
// @Summary      Resolve the effective rate of a currency
// @Description  Returns the active rate dated on the given day, else the newest active rate before it.
// @Tags         rates
// @Produce      json
// @Param        code path string true "Currency code" example(USD)
// @Param        on query string false "Calendar date, defaults to today" example(2024-03-01)
// @Success      200 {object} APIResponse[currencyapp.ExchangeRateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "No rate on or before the date"
// @Router       /currency/rates/{code} [get]
func (h *ExchangeRateHandler) Resolve(c *gin.Context) {
	asOf, err := parseAsOf(c.Query("on"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rate, err := h.resolver.ResolveRate(c.Request.Context(), c.Param("code"), asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, currencyapp.ToExchangeRateResponse(rate))
}

// History godoc
// @ID           listRateHistory
// @Summary      List rates of a currency
// @Description  Newest first, optionally bounded by an inclusive date window.
// @Tags         rates
// @Produce      json
// @Param        code path string true "Currency code"
// @Param        from query string false "First date, inclusive"
// @Param        to query string false "Last date, inclusive"
// @Param        include_inactive query bool false "Include soft-deleted rates"
// @Param        limit query int false "Maximum rows" minimum(1) maximum(1000)
// @Success      200 {object} APIResponse[[]currencyapp.ExchangeRateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /currency/rates/{code}/history [get]
func (h *ExchangeRateHandler) History(c *gin.Context) {
	var query currencyapp.RateHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	rates, err := h.currencyService.ListRates(c.Request.Context(), c.Param("code"), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rates)
}

// Upsert godoc
// @ID           upsertRate
// @Summary      Store the rate of a currency for a date
// @Description  Inserts the rate, or overwrites buy/sell/source of the existing rate for the same currency and date in place.
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the first response for retried requests"
// @Param        request body currencyapp.UpsertRateRequest true "Rate"
// @Success      200 {object} APIResponse[currencyapp.ExchangeRateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Unknown or inactive currency"
// @Router       /currency/rates [post]
func (h *ExchangeRateHandler) Upsert(c *gin.Context) {
	var req currencyapp.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	rateDate, err := currency.ParseDate(req.RateDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	rate, err := h.resolver.UpsertRate(c.Request.Context(), req.CurrencyCode, req.BuyRate, req.SellRate,
		rateDate, currency.RateSource(req.Source))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, currencyapp.ToExchangeRateResponse(rate))
}

// Deactivate godoc
// @ID           deactivateRate
// @Summary      Deactivate a rate
// @Description  Soft-delete; resolution skips inactive rates.
// @Tags         rates
// @Param        id path string true "Rate ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /currency/rates/{id} [delete]
func (h *ExchangeRateHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.currencyService.DeactivateRate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Convert godoc
// @ID           convertAmount
// @Summary      Convert an amount between currencies
// @Description  Converts through the base currency using the buy rate of the source and the sell rate of the target.
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        request body currencyapp.ConvertRequest true "Conversion"
// @Success      200 {object} APIResponse[currencyapp.ConversionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Missing rate"
// @Failure      409 {object} ErrorResponse "No base currency configured"
// @Router       /currency/convert [post]
func (h *ExchangeRateHandler) Convert(c *gin.Context) {
	var req currencyapp.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	asOf, err := parseAsOf(req.AsOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	conv, err := h.resolver.Convert(c.Request.Context(), req.Amount, req.From, req.To, asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, currencyapp.ToConversionResponse(conv))
}

// Price godoc
// @ID           calculatePrice
// @Summary      Recalculate a price into another currency
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        request body currencyapp.PriceRequest true "Price"
// @Success      200 {object} APIResponse[currencyapp.PriceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /currency/price [post]
func (h *ExchangeRateHandler) Price(c *gin.Context) {
	var req currencyapp.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	asOf, err := parseAsOf(req.AsOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	price, err := h.resolver.CalculatePrice(c.Request.Context(), req.BasePrice, req.BaseCurrency, req.TargetCurrency, asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, currencyapp.ToPriceResponse(price))
}
