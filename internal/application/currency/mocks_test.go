package currency

import (
	"context"
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCurrencyRepository is a mock implementation of CurrencyRepository
type MockCurrencyRepository struct {
	mock.Mock
	Committed []bool
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, code string) (*currency.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBase(ctx context.Context) (*currency.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindAll(ctx context.Context, filter currency.CurrencyFilter) ([]currency.Currency, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]currency.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Create(ctx context.Context, c *currency.Currency) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCurrencyRepository) Save(ctx context.Context, c *currency.Currency) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCurrencyRepository) SetBaseExclusive(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

// WithinTransaction runs fn against the mock itself and reports whether the
// transaction would have committed through Committed.
func (m *MockCurrencyRepository) WithinTransaction(ctx context.Context, fn func(repo currency.CurrencyRepository) error) error {
	err := fn(m)
	m.Committed = append(m.Committed, err == nil)
	return err
}

// MockExchangeRateRepository is a mock implementation of ExchangeRateRepository
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindActiveOn(ctx context.Context, code string, date time.Time) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, code, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindLatestActiveOnOrBefore(ctx context.Context, code string, date time.Time) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, code, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) Upsert(ctx context.Context, rate *currency.ExchangeRate) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*currency.ExchangeRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindHistory(ctx context.Context, code string, filter currency.RateHistoryFilter) ([]currency.ExchangeRate, error) {
	args := m.Called(ctx, code, filter)
	return args.Get(0).([]currency.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) Save(ctx context.Context, rate *currency.ExchangeRate) error {
	return m.Called(ctx, rate).Error(0)
}
