package currency

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CurrencyFilter narrows currency listings.
type CurrencyFilter struct {
	ActiveOnly bool
	Search     string
}

// CurrencyRepository persists currencies.
type CurrencyRepository interface {
	// FindByCode returns shared.ErrNotFound for unknown codes.
	FindByCode(ctx context.Context, code string) (*Currency, error)
	// FindBase returns shared.ErrNotFound when no active currency is flagged base.
	FindBase(ctx context.Context) (*Currency, error)
	FindAll(ctx context.Context, filter CurrencyFilter) ([]Currency, error)
	// Create returns shared.ErrAlreadyExists for a duplicate code.
	Create(ctx context.Context, c *Currency) error
	Save(ctx context.Context, c *Currency) error
	// SetBaseExclusive flags code as base and clears every other currency in
	// one transaction.
	SetBaseExclusive(ctx context.Context, code string) error
	// WithinTransaction runs fn against a repository bound to one
	// transaction, committing only if fn returns nil.
	WithinTransaction(ctx context.Context, fn func(repo CurrencyRepository) error) error
}

// RateHistoryFilter bounds a rate history listing. Zero dates are open ends.
type RateHistoryFilter struct {
	From            time.Time
	To              time.Time
	IncludeInactive bool
	Limit           int
}

// ExchangeRateRepository persists exchange rates.
type ExchangeRateRepository interface {
	// FindActiveOn returns the active rate dated exactly date, or shared.ErrNotFound.
	FindActiveOn(ctx context.Context, code string, date time.Time) (*ExchangeRate, error)
	// FindLatestActiveOnOrBefore returns the newest active rate dated on or
	// before date, or shared.ErrNotFound.
	FindLatestActiveOnOrBefore(ctx context.Context, code string, date time.Time) (*ExchangeRate, error)
	// Upsert inserts the rate or, if one exists for the same currency and
	// date, overwrites its rates and source in place. It returns the stored row.
	Upsert(ctx context.Context, rate *ExchangeRate) (*ExchangeRate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExchangeRate, error)
	FindHistory(ctx context.Context, code string, filter RateHistoryFilter) ([]ExchangeRate, error)
	Save(ctx context.Context, rate *ExchangeRate) error
}
