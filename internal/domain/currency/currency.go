// Package currency holds the currency and exchange-rate model together with
// the conversion arithmetic used to move amounts through the base currency.
package currency

import (
	"regexp"
	"strings"

	"github.com/bizops/backend/internal/domain/shared"
	isocurrency "golang.org/x/text/currency"
)

const (
	// DefaultDecimalPlaces applies when a currency declares no precision.
	DefaultDecimalPlaces = 2
	// MaxDecimalPlaces is the largest precision a currency may declare.
	MaxDecimalPlaces = 8
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeCode trims and upper-cases a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode checks that code is exactly three letters after normalization.
func ValidateCode(code string) error {
	if !codePattern.MatchString(NormalizeCode(code)) {
		return shared.ErrValidation.WithMessage("Currency code must be three letters")
	}
	return nil
}

// SameCode reports whether two codes name the same currency, ignoring case.
func SameCode(a, b string) bool {
	return NormalizeCode(a) == NormalizeCode(b)
}

// ISODecimalPlaces returns the ISO 4217 minor unit for code, or
// DefaultDecimalPlaces if code is not a recognized ISO currency.
func ISODecimalPlaces(code string) int {
	unit, err := isocurrency.ParseISO(NormalizeCode(code))
	if err != nil {
		return DefaultDecimalPlaces
	}
	scale, _ := isocurrency.Standard.Rounding(unit)
	return scale
}

// Currency is a unit of account that exchange rates are quoted for.
type Currency struct {
	shared.BaseEntity
	Code          string
	Name          string
	Symbol        string
	DecimalPlaces int
	IsBase        bool
	IsActive      bool
}

// NewCurrency creates an active, non-base currency. A nil decimalPlaces means
// DefaultDecimalPlaces.
func NewCurrency(code, name, symbol string, decimalPlaces *int) (*Currency, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	code = NormalizeCode(code)

	places := DefaultDecimalPlaces
	if decimalPlaces != nil {
		places = *decimalPlaces
	}

	c := &Currency{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		IsActive:   true,
	}
	if err := c.Rename(name, symbol); err != nil {
		return nil, err
	}
	if err := c.SetDecimalPlaces(places); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename updates the display name and symbol.
func (c *Currency) Rename(name, symbol string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrValidation.WithMessage("Currency name cannot be empty")
	}
	if len(name) > 100 {
		return shared.ErrValidation.WithMessage("Currency name cannot exceed 100 characters")
	}
	symbol = strings.TrimSpace(symbol)
	if len(symbol) > 10 {
		return shared.ErrValidation.WithMessage("Currency symbol cannot exceed 10 characters")
	}
	c.Name = name
	c.Symbol = symbol
	c.Touch()
	return nil
}

// SetDecimalPlaces changes the display precision of the currency.
func (c *Currency) SetDecimalPlaces(places int) error {
	if places < 0 || places > MaxDecimalPlaces {
		return shared.ErrValidation.WithMessage("Decimal places must be between 0 and 8")
	}
	c.DecimalPlaces = places
	c.Touch()
	return nil
}

// Activate re-enables the currency.
func (c *Currency) Activate() {
	c.IsActive = true
	c.Touch()
}

// Deactivate soft-deletes the currency. The base currency cannot be deactivated.
func (c *Currency) Deactivate() error {
	if c.IsBase {
		return shared.ErrCannotDeactivateBase
	}
	c.IsActive = false
	c.Touch()
	return nil
}
