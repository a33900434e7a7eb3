package currency

import (
	"time"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RateSource records where a rate came from
type RateSource string

const (
	RateSourceManual       RateSource = "manual"
	RateSourceExternalFeed RateSource = "external-feed"
	RateSourceComputed     RateSource = "computed"
)

// String returns the string representation of RateSource
func (s RateSource) String() string {
	return string(s)
}

// IsValid returns true if the source is one of the known values
func (s RateSource) IsValid() bool {
	switch s {
	case RateSourceManual, RateSourceExternalFeed, RateSourceComputed:
		return true
	}
	return false
}

// MaxRateScale is the number of fractional digits a stored rate keeps.
const MaxRateScale int32 = 12

// DateLayout is the calendar-date format used for rate dates on the wire.
const DateLayout = "2006-01-02"

// NormalizeDate drops the clock part of t, keeping the calendar date as seen
// in t's own location, and returns it as midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.ErrValidation.WithMessage("Date must use the YYYY-MM-DD format")
	}
	return t, nil
}

// ExchangeRate is the dealer buy/sell quote for one currency against the base
// currency on one calendar date. Both rates are quote units per base unit.
type ExchangeRate struct {
	shared.BaseEntity
	CurrencyCode string
	BuyRate      decimal.Decimal
	SellRate     decimal.Decimal
	RateDate     time.Time
	Source       RateSource
	IsActive     bool
}

// NewExchangeRate validates and creates an active rate.
func NewExchangeRate(code string, buyRate, sellRate decimal.Decimal, rateDate time.Time, source RateSource) (*ExchangeRate, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	if !buyRate.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("Buy rate must be positive")
	}
	if !sellRate.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("Sell rate must be positive")
	}
	if exceedsRateScale(buyRate) || exceedsRateScale(sellRate) {
		return nil, shared.ErrValidation.WithMessage("Rates carry at most 12 decimal places")
	}
	if source == "" {
		source = RateSourceManual
	}
	if !source.IsValid() {
		return nil, shared.ErrValidation.WithMessage("Rate source must be manual, external-feed or computed")
	}
	if rateDate.IsZero() {
		return nil, shared.ErrValidation.WithMessage("Rate date is required")
	}

	return &ExchangeRate{
		BaseEntity:   shared.NewBaseEntity(),
		CurrencyCode: NormalizeCode(code),
		BuyRate:      buyRate,
		SellRate:     sellRate,
		RateDate:     NormalizeDate(rateDate),
		Source:       source,
		IsActive:     true,
	}, nil
}

// Deactivate soft-deletes the rate so that lookups skip it.
func (r *ExchangeRate) Deactivate() {
	r.IsActive = false
	r.Touch()
}

// Spread returns SellRate - BuyRate.
func (r *ExchangeRate) Spread() decimal.Decimal {
	return r.SellRate.Sub(r.BuyRate)
}

func exceedsRateScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(MaxRateScale))
}
