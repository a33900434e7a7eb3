package currency

import (
	"context"
	"errors"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CurrencyService handles currency and rate management
type CurrencyService struct {
	currencyRepo currency.CurrencyRepository
	rateRepo     currency.ExchangeRateRepository
	resolver     *RateResolver
	logger       *zap.Logger
}

// NewCurrencyService creates a new CurrencyService
func NewCurrencyService(
	currencyRepo currency.CurrencyRepository,
	rateRepo currency.ExchangeRateRepository,
	resolver *RateResolver,
	logger *zap.Logger,
) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		resolver:     resolver,
		logger:       logger,
	}
}

// Create creates a currency, making it the base currency when requested
func (s *CurrencyService) Create(ctx context.Context, req CreateCurrencyRequest) (*CurrencyResponse, error) {
	places := req.DecimalPlaces
	if places == nil && req.ISODecimals {
		iso := currency.ISODecimalPlaces(req.Code)
		places = &iso
	}
	c, err := currency.NewCurrency(req.Code, req.Name, req.Symbol, places)
	if err != nil {
		return nil, err
	}

	// the row and the base flag commit together or not at all
	err = s.currencyRepo.WithinTransaction(ctx, func(repo currency.CurrencyRepository) error {
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
		if req.IsBase {
			return s.resolver.setBase(ctx, repo, c.Code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.IsBase = req.IsBase
	s.logger.Info("Currency created",
		zap.String("code", c.Code),
		zap.Int("decimal_places", c.DecimalPlaces),
		zap.Bool("is_base", c.IsBase))

	resp := ToCurrencyResponse(c)
	return &resp, nil
}

// Get retrieves a currency by code
func (s *CurrencyService) Get(ctx context.Context, code string) (*CurrencyResponse, error) {
	c, err := s.findCurrency(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := ToCurrencyResponse(c)
	return &resp, nil
}

// GetBase retrieves the base currency
func (s *CurrencyService) GetBase(ctx context.Context) (*CurrencyResponse, error) {
	c, err := s.currencyRepo.FindBase(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnknownBaseCurrency
		}
		return nil, err
	}
	resp := ToCurrencyResponse(c)
	return &resp, nil
}

// List lists currencies ordered by code
func (s *CurrencyService) List(ctx context.Context, filter CurrencyListFilter) ([]CurrencyResponse, error) {
	currencies, err := s.currencyRepo.FindAll(ctx, currency.CurrencyFilter{
		ActiveOnly: filter.ActiveOnly,
		Search:     filter.Search,
	})
	if err != nil {
		return nil, err
	}
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses, nil
}

// Update applies a partial update. Setting is_base to true switches the base
// currency; clearing it on the current base is rejected because it would
// leave the system without one.
func (s *CurrencyService) Update(ctx context.Context, code string, req UpdateCurrencyRequest) (*CurrencyResponse, error) {
	c, err := s.findCurrency(ctx, code)
	if err != nil {
		return nil, err
	}

	makeBase := req.IsBase != nil && *req.IsBase
	if req.IsBase != nil && !*req.IsBase && c.IsBase {
		return nil, shared.ErrInvalidState.WithMessage("Set another currency as base instead of clearing the base flag")
	}
	if makeBase && req.IsActive != nil && !*req.IsActive {
		return nil, shared.ErrValidation.WithMessage("A currency cannot be deactivated and made base at once")
	}

	if req.Name != nil || req.Symbol != nil {
		name, symbol := c.Name, c.Symbol
		if req.Name != nil {
			name = *req.Name
		}
		if req.Symbol != nil {
			symbol = *req.Symbol
		}
		if err := c.Rename(name, symbol); err != nil {
			return nil, err
		}
	}
	if req.DecimalPlaces != nil {
		if err := c.SetDecimalPlaces(*req.DecimalPlaces); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			c.Activate()
		} else if err := c.Deactivate(); err != nil {
			return nil, err
		}
	}

	err = s.currencyRepo.WithinTransaction(ctx, func(repo currency.CurrencyRepository) error {
		if err := repo.Save(ctx, c); err != nil {
			return err
		}
		if makeBase && !c.IsBase {
			return s.resolver.setBase(ctx, repo, c.Code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if makeBase {
		c.IsBase = true
	}

	resp := ToCurrencyResponse(c)
	return &resp, nil
}

// SetBase makes code the base currency
func (s *CurrencyService) SetBase(ctx context.Context, code string) (*CurrencyResponse, error) {
	if err := s.resolver.SetBaseCurrency(ctx, code); err != nil {
		return nil, err
	}
	return s.Get(ctx, code)
}

// Deactivate soft-deletes a currency. The base currency cannot be deactivated.
func (s *CurrencyService) Deactivate(ctx context.Context, code string) error {
	c, err := s.findCurrency(ctx, code)
	if err != nil {
		return err
	}
	if err := c.Deactivate(); err != nil {
		return err
	}
	if err := s.currencyRepo.Save(ctx, c); err != nil {
		return err
	}
	s.logger.Info("Currency deactivated", zap.String("code", c.Code))
	return nil
}

// ListRates lists a currency's rates, newest first
func (s *CurrencyService) ListRates(ctx context.Context, code string, query RateHistoryQuery) ([]ExchangeRateResponse, error) {
	c, err := s.findCurrency(ctx, code)
	if err != nil {
		return nil, err
	}

	filter := currency.RateHistoryFilter{
		IncludeInactive: query.IncludeInactive,
		Limit:           query.Limit,
	}
	if query.From != "" {
		if filter.From, err = currency.ParseDate(query.From); err != nil {
			return nil, err
		}
	}
	if query.To != "" {
		if filter.To, err = currency.ParseDate(query.To); err != nil {
			return nil, err
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, shared.ErrValidation.WithMessage("from must not be after to")
	}

	rates, err := s.rateRepo.FindHistory(ctx, c.Code, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses, nil
}

// DeactivateRate soft-deletes a rate so resolution skips it
func (s *CurrencyService) DeactivateRate(ctx context.Context, id uuid.UUID) error {
	rate, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !rate.IsActive {
		return nil
	}
	rate.Deactivate()
	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return err
	}
	s.logger.Info("Exchange rate deactivated",
		zap.String("rate_id", id.String()),
		zap.String("currency", rate.CurrencyCode),
		zap.String("rate_date", rate.RateDate.Format(currency.DateLayout)))
	return nil
}

func (s *CurrencyService) findCurrency(ctx context.Context, code string) (*currency.Currency, error) {
	c, err := s.currencyRepo.FindByCode(ctx, currency.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnknownCurrency
		}
		return nil, err
	}
	return c, nil
}
