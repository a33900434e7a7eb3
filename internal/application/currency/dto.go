package currency

import (
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest represents a request to create a currency
type CreateCurrencyRequest struct {
	Code          string `json:"code" binding:"required,currency_code"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Symbol        string `json:"symbol" binding:"max=10"`
	DecimalPlaces *int   `json:"decimal_places" binding:"omitempty,min=0,max=8"`
	ISODecimals   bool   `json:"iso_decimals"`
	IsBase        bool   `json:"is_base"`
}

// UpdateCurrencyRequest represents a partial currency update
type UpdateCurrencyRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	Symbol        *string `json:"symbol" binding:"omitempty,max=10"`
	DecimalPlaces *int    `json:"decimal_places" binding:"omitempty,min=0,max=8"`
	IsBase        *bool   `json:"is_base"`
	IsActive      *bool   `json:"is_active"`
}

// CurrencyListFilter represents filter options for the currency list
type CurrencyListFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
}

// CurrencyResponse represents a currency in API responses
type CurrencyResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	DecimalPlaces int       `json:"decimal_places"`
	IsBase        bool      `json:"is_base"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpsertRateRequest represents a rate ingestion request. RateDate is YYYY-MM-DD.
type UpsertRateRequest struct {
	CurrencyCode string          `json:"currency_code" binding:"required,currency_code"`
	BuyRate      decimal.Decimal `json:"buy_rate"`
	SellRate     decimal.Decimal `json:"sell_rate"`
	RateDate     string          `json:"rate_date" binding:"required,datetime=2006-01-02"`
	Source       string          `json:"source" binding:"omitempty,oneof=manual external-feed computed"`
}

// RateHistoryQuery bounds a rate history listing
type RateHistoryQuery struct {
	From            string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To              string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	IncludeInactive bool   `form:"include_inactive"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ExchangeRateResponse represents an exchange rate in API responses
type ExchangeRateResponse struct {
	ID           uuid.UUID       `json:"id"`
	CurrencyCode string          `json:"currency_code"`
	BuyRate      decimal.Decimal `json:"buy_rate"`
	SellRate     decimal.Decimal `json:"sell_rate"`
	Spread       decimal.Decimal `json:"spread"`
	RateDate     string          `json:"rate_date"`
	Source       string          `json:"source"`
	IsActive     bool            `json:"is_active"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ConvertRequest represents an amount conversion request
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from" binding:"required,currency_code"`
	To     string          `json:"to" binding:"required,currency_code"`
	AsOf   string          `json:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// PriceRequest represents a price recalculation request
type PriceRequest struct {
	BasePrice      decimal.Decimal `json:"base_price"`
	BaseCurrency   string          `json:"base_currency" binding:"required,currency_code"`
	TargetCurrency string          `json:"target_currency" binding:"required,currency_code"`
	AsOf           string          `json:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// ConversionResponse represents a conversion result
type ConversionResponse struct {
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	EffectiveRate   decimal.Decimal `json:"effective_rate"`
	DateUsed        string          `json:"date_used"`
	FromRateDate    *string         `json:"from_rate_date,omitempty"`
	ToRateDate      *string         `json:"to_rate_date,omitempty"`
}

// PriceResponse represents a recalculated price
type PriceResponse struct {
	BasePrice      decimal.Decimal `json:"base_price"`
	Price          decimal.Decimal `json:"price"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	DateUsed       string          `json:"date_used"`
}

// ToCurrencyResponse converts a domain Currency to CurrencyResponse
func ToCurrencyResponse(c *currency.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		IsBase:        c.IsBase,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToExchangeRateResponse converts a domain ExchangeRate to ExchangeRateResponse
func ToExchangeRateResponse(r *currency.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:           r.ID,
		CurrencyCode: r.CurrencyCode,
		BuyRate:      r.BuyRate,
		SellRate:     r.SellRate,
		Spread:       r.Spread(),
		RateDate:     r.RateDate.Format(currency.DateLayout),
		Source:       string(r.Source),
		IsActive:     r.IsActive,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToConversionResponse converts a domain Conversion to ConversionResponse
func ToConversionResponse(c currency.Conversion) ConversionResponse {
	return ConversionResponse{
		OriginalAmount:  c.OriginalAmount,
		ConvertedAmount: c.ConvertedAmount,
		FromCurrency:    c.FromCurrency,
		ToCurrency:      c.ToCurrency,
		EffectiveRate:   c.EffectiveRate,
		DateUsed:        c.DateUsed.Format(currency.DateLayout),
		FromRateDate:    formatDate(c.FromRateDate),
		ToRateDate:      formatDate(c.ToRateDate),
	}
}

// ToPriceResponse converts a Price to PriceResponse
func ToPriceResponse(p Price) PriceResponse {
	return PriceResponse{
		BasePrice:      p.BasePrice,
		Price:          p.Price,
		BaseCurrency:   p.BaseCurrency,
		TargetCurrency: p.TargetCurrency,
		EffectiveRate:  p.EffectiveRate,
		DateUsed:       p.DateUsed.Format(currency.DateLayout),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(currency.DateLayout)
	return &s
}
