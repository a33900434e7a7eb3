// Package currency holds the currency application services: rate
// resolution, conversion, rate ingestion and currency management.
package currency

import (
	"context"
	"errors"
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Price is a price recalculated into another currency
type Price struct {
	BasePrice      decimal.Decimal
	Price          decimal.Decimal
	BaseCurrency   string
	TargetCurrency string
	EffectiveRate  decimal.Decimal
	DateUsed       time.Time
}

// RateResolver resolves exchange rates and converts amounts through the base
// currency. It keeps no state between calls.
type RateResolver struct {
	currencyRepo currency.CurrencyRepository
	rateRepo     currency.ExchangeRateRepository
	logger       *zap.Logger
	metrics      *telemetry.BusinessMetrics
	now          func() time.Time
}

// ResolverOption configures a RateResolver
type ResolverOption func(*RateResolver)

// WithClock sets the clock that decides "today" when no date is given
func WithClock(now func() time.Time) ResolverOption {
	return func(r *RateResolver) { r.now = now }
}

// WithMetrics records conversions, upserts and base switches
func WithMetrics(m *telemetry.BusinessMetrics) ResolverOption {
	return func(r *RateResolver) { r.metrics = m }
}

// NewRateResolver creates a new RateResolver
func NewRateResolver(
	currencyRepo currency.CurrencyRepository,
	rateRepo currency.ExchangeRateRepository,
	logger *zap.Logger,
	opts ...ResolverOption,
) *RateResolver {
	r := &RateResolver{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RateResolver) dateOrToday(asOf *time.Time) time.Time {
	if asOf != nil {
		return currency.NormalizeDate(*asOf)
	}
	return currency.NormalizeDate(r.now())
}

// ResolveRate returns the active rate dated asOf, or else the newest active
// rate dated before it. A nil asOf means today. Unknown codes and currencies
// without a rate in range both yield shared.ErrRateNotFound.
func (r *RateResolver) ResolveRate(ctx context.Context, code string, asOf *time.Time) (*currency.ExchangeRate, error) {
	return r.resolve(ctx, currency.NormalizeCode(code), r.dateOrToday(asOf))
}

func (r *RateResolver) resolve(ctx context.Context, code string, date time.Time) (*currency.ExchangeRate, error) {
	rate, err := r.rateRepo.FindActiveOn(ctx, code, date)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	rate, err = r.rateRepo.FindLatestActiveOnOrBefore(ctx, code, date)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrRateNotFound
		}
		return nil, err
	}
	return rate, nil
}

// Convert converts amount from one currency to another as of asOf.
//
// Equal codes short-circuit to the unchanged amount at rate 1 without any
// lookup, even if the code is unknown. Otherwise the base currency must be
// configured and every non-base side must resolve a rate.
func (r *RateResolver) Convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf *time.Time) (currency.Conversion, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rate_resolver", "convert",
		telemetry.SpanAttrFromCurrency, currency.NormalizeCode(from),
		telemetry.SpanAttrToCurrency, currency.NormalizeCode(to),
		telemetry.SpanAttrAmount, amount.String(),
	)
	defer span.End()

	conv, kind, err := r.convert(ctx, amount, from, to, asOf)
	if err != nil {
		telemetry.RecordError(span, err)
		return currency.Conversion{}, err
	}
	r.metrics.RecordConversion(ctx, kind, conv.FromCurrency, conv.ToCurrency)
	return conv, nil
}

func (r *RateResolver) convert(ctx context.Context, amount decimal.Decimal, from, to string, asOf *time.Time) (currency.Conversion, string, error) {
	if err := currency.ValidateAmount(amount); err != nil {
		return currency.Conversion{}, "", err
	}
	date := r.dateOrToday(asOf)
	if currency.SameCode(from, to) {
		return currency.Identity(amount, from, date), "identity", nil
	}

	base, err := r.currencyRepo.FindBase(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return currency.Conversion{}, "", shared.ErrUnknownBaseCurrency
		}
		return currency.Conversion{}, "", err
	}

	needFrom, needTo := currency.Legs(from, to, base.Code)
	var fromRate, toRate *currency.ExchangeRate
	if needFrom {
		if fromRate, err = r.resolve(ctx, currency.NormalizeCode(from), date); err != nil {
			return currency.Conversion{}, "", err
		}
	}
	if needTo {
		if toRate, err = r.resolve(ctx, currency.NormalizeCode(to), date); err != nil {
			return currency.Conversion{}, "", err
		}
	}

	conv, err := currency.Convert(amount, from, to, base.Code, fromRate, toRate)
	if err != nil {
		return currency.Conversion{}, "", err
	}
	kind := "base"
	if needFrom && needTo {
		kind = "cross"
	}
	return conv, kind, nil
}

// CalculatePrice recalculates basePrice into targetCode. It follows Convert
// exactly, including the same-currency short-circuit.
func (r *RateResolver) CalculatePrice(ctx context.Context, basePrice decimal.Decimal, baseCode, targetCode string, asOf *time.Time) (Price, error) {
	conv, err := r.Convert(ctx, basePrice, baseCode, targetCode, asOf)
	if err != nil {
		return Price{}, err
	}
	return Price{
		BasePrice:      conv.OriginalAmount,
		Price:          conv.ConvertedAmount,
		BaseCurrency:   conv.FromCurrency,
		TargetCurrency: conv.ToCurrency,
		EffectiveRate:  conv.EffectiveRate,
		DateUsed:       conv.DateUsed,
	}, nil
}

// UpsertRate stores the rate for (code, date), overwriting the rates and
// source of an existing row in place. The currency must exist and be active.
func (r *RateResolver) UpsertRate(
	ctx context.Context,
	code string,
	buyRate, sellRate decimal.Decimal,
	rateDate time.Time,
	source currency.RateSource,
) (*currency.ExchangeRate, error) {
	code = currency.NormalizeCode(code)
	cur, err := r.currencyRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnknownCurrency
		}
		return nil, err
	}
	if !cur.IsActive {
		return nil, shared.ErrUnknownCurrency
	}

	rate, err := currency.NewExchangeRate(code, buyRate, sellRate, rateDate, source)
	if err != nil {
		return nil, err
	}

	stored, err := r.rateRepo.Upsert(ctx, rate)
	if err != nil {
		return nil, err
	}

	r.metrics.RecordRateUpsert(ctx, string(stored.Source))
	r.logger.Info("Exchange rate upserted",
		zap.String("currency", code),
		zap.String("rate_date", stored.RateDate.Format(currency.DateLayout)),
		zap.String("buy_rate", stored.BuyRate.String()),
		zap.String("sell_rate", stored.SellRate.String()),
		zap.String("source", string(stored.Source)))
	return stored, nil
}

// SetBaseCurrency makes code the only base currency. The switch happens in
// a single transaction so readers never observe zero or two base currencies.
func (r *RateResolver) SetBaseCurrency(ctx context.Context, code string) error {
	return r.setBase(ctx, r.currencyRepo, code)
}

// setBase switches the base through repo, which may be bound to a caller's
// transaction.
func (r *RateResolver) setBase(ctx context.Context, repo currency.CurrencyRepository, code string) error {
	code = currency.NormalizeCode(code)
	cur, err := repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrUnknownCurrency
		}
		return err
	}
	if !cur.IsActive {
		return shared.ErrUnknownCurrency
	}
	if cur.IsBase {
		return nil
	}

	if err := repo.SetBaseExclusive(ctx, code); err != nil {
		r.logger.Error("Failed to switch base currency", zap.String("currency", code), zap.Error(err))
		return err
	}

	r.metrics.RecordBaseSwitch(ctx)
	r.logger.Info("Base currency switched", zap.String("currency", code))
	return nil
}
