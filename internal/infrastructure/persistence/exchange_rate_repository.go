package persistence

import (
	"context"
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExchangeRateRepository implements ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GormExchangeRateRepository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// FindActiveOn finds the active rate dated exactly date
func (r *GormExchangeRateRepository) FindActiveOn(ctx context.Context, code string, date time.Time) (*currency.ExchangeRate, error) {
	var model models.ExchangeRateModel
	if err := r.db.WithContext(ctx).
		Where("currency_code = ? AND rate_date = ? AND is_active = ?", code, currency.NormalizeDate(date), true).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindLatestActiveOnOrBefore finds the newest active rate dated on or before date
func (r *GormExchangeRateRepository) FindLatestActiveOnOrBefore(ctx context.Context, code string, date time.Time) (*currency.ExchangeRate, error) {
	var model models.ExchangeRateModel
	if err := r.db.WithContext(ctx).
		Where("currency_code = ? AND rate_date <= ? AND is_active = ?", code, currency.NormalizeDate(date), true).
		Order("rate_date DESC").
		Take(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Upsert inserts the rate or overwrites the rates and source of the row
// already stored for (currency_code, rate_date). The existing row keeps its
// id and is reactivated. The stored row is read back and returned.
func (r *GormExchangeRateRepository) Upsert(ctx context.Context, rate *currency.ExchangeRate) (*currency.ExchangeRate, error) {
	model := models.ExchangeRateModelFromDomain(rate)
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "currency_code"}, {Name: "rate_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"buy_rate", "sell_rate", "source", "is_active", "updated_at"}),
	}).Create(model).Error; err != nil {
		return nil, translateError(err)
	}

	var stored models.ExchangeRateModel
	if err := db.Where("currency_code = ? AND rate_date = ?", model.CurrencyCode, model.RateDate).
		First(&stored).Error; err != nil {
		return nil, translateError(err)
	}
	return stored.ToDomain(), nil
}

// FindByID finds a rate by its ID
func (r *GormExchangeRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*currency.ExchangeRate, error) {
	var model models.ExchangeRateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindHistory lists a currency's rates, newest first
func (r *GormExchangeRateRepository) FindHistory(ctx context.Context, code string, filter currency.RateHistoryFilter) ([]currency.ExchangeRate, error) {
	query := r.db.WithContext(ctx).Model(&models.ExchangeRateModel{}).Where("currency_code = ?", code)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if !filter.From.IsZero() {
		query = query.Where("rate_date >= ?", currency.NormalizeDate(filter.From))
	}
	if !filter.To.IsZero() {
		query = query.Where("rate_date <= ?", currency.NormalizeDate(filter.To))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.ExchangeRateModel
	if err := query.Order("rate_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	rates := make([]currency.ExchangeRate, len(rows))
	for i := range rows {
		rates[i] = *rows[i].ToDomain()
	}
	return rates, nil
}

// Save updates a rate's values and active flag
func (r *GormExchangeRateRepository) Save(ctx context.Context, rate *currency.ExchangeRate) error {
	result := r.db.WithContext(ctx).Model(&models.ExchangeRateModel{}).
		Where("id = ?", rate.ID).
		Updates(map[string]any{
			"buy_rate":   rate.BuyRate,
			"sell_rate":  rate.SellRate,
			"source":     rate.Source,
			"is_active":  rate.IsActive,
			"updated_at": rate.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ currency.ExchangeRateRepository = (*GormExchangeRateRepository)(nil)
