package currency

import (
	"time"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Output precision of a conversion. Intermediate arithmetic is not rounded.
const (
	AmountPlaces int32 = 4
	RatePlaces   int32 = 6
)

// divisionPlaces bounds the precision of intermediate quotients.
const divisionPlaces int32 = 20

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	OriginalAmount  decimal.Decimal
	ConvertedAmount decimal.Decimal
	FromCurrency    string
	ToCurrency      string
	EffectiveRate   decimal.Decimal
	// DateUsed is the rate date the result depends on. For a cross
	// conversion it is the older of the two rate dates.
	DateUsed     time.Time
	FromRateDate *time.Time
	ToRateDate   *time.Time
}

// IsIdentity reports whether the conversion is a same-currency short-circuit.
func (c Conversion) IsIdentity() bool {
	return c.FromCurrency == c.ToCurrency
}

// ValidateAmount rejects negative amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrValidation.WithMessage("Amount cannot be negative")
	}
	return nil
}

// Identity returns the unchanged amount at rate 1.
func Identity(amount decimal.Decimal, code string, asOf time.Time) Conversion {
	code = NormalizeCode(code)
	return Conversion{
		OriginalAmount:  amount,
		ConvertedAmount: amount,
		FromCurrency:    code,
		ToCurrency:      code,
		EffectiveRate:   decimal.NewFromInt(1),
		DateUsed:        NormalizeDate(asOf),
	}
}

// Legs reports which sides of a conversion need a rate. The base side needs none.
func Legs(from, to, base string) (needFrom, needTo bool) {
	return !SameCode(from, base), !SameCode(to, base)
}

// Convert moves amount from one currency to another through base.
//
// The base side of a conversion uses no rate. A quote currency entering base
// is bought at its BuyRate (amount * buy); base leaving to a quote currency is
// sold at the target's SellRate (amount / sell). A cross conversion does both.
// fromRate must be set unless from is the base, toRate unless to is the base.
func Convert(amount decimal.Decimal, from, to, base string, fromRate, toRate *ExchangeRate) (Conversion, error) {
	from, to, base = NormalizeCode(from), NormalizeCode(to), NormalizeCode(base)
	if err := ValidateAmount(amount); err != nil {
		return Conversion{}, err
	}
	if base == "" {
		return Conversion{}, shared.ErrUnknownBaseCurrency
	}

	needFrom, needTo := Legs(from, to, base)
	if needFrom && fromRate == nil {
		return Conversion{}, shared.ErrRateNotFound
	}
	if needTo && toRate == nil {
		return Conversion{}, shared.ErrRateNotFound
	}

	rate := decimal.NewFromInt(1)
	var fromDate, toDate *time.Time
	if needFrom {
		rate = rate.Mul(fromRate.BuyRate)
		d := fromRate.RateDate
		fromDate = &d
	}
	if needTo {
		rate = rate.DivRound(toRate.SellRate, divisionPlaces)
		d := toRate.RateDate
		toDate = &d
	}

	var converted decimal.Decimal
	switch {
	case needFrom && needTo:
		converted = amount.Mul(fromRate.BuyRate).DivRound(toRate.SellRate, divisionPlaces)
	case needFrom:
		converted = amount.Mul(fromRate.BuyRate)
	case needTo:
		converted = amount.DivRound(toRate.SellRate, divisionPlaces)
	default:
		converted = amount
	}

	return Conversion{
		OriginalAmount:  amount,
		ConvertedAmount: converted.Round(AmountPlaces),
		FromCurrency:    from,
		ToCurrency:      to,
		EffectiveRate:   rate.Round(RatePlaces),
		DateUsed:        olderDate(fromDate, toDate),
		FromRateDate:    fromDate,
		ToRateDate:      toDate,
	}, nil
}

func olderDate(a, b *time.Time) time.Time {
	switch {
	case a == nil && b == nil:
		return time.Time{}
	case a == nil:
		return *b
	case b == nil:
		return *a
	case a.Before(*b):
		return *a
	default:
		return *b
	}
}
