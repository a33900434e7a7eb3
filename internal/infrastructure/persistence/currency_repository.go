package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCurrencyRepository implements CurrencyRepository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GormCurrencyRepository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// FindByCode finds a currency by its ISO code
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, code string) (*currency.Currency, error) {
	var model models.CurrencyModel
	if err := r.db.WithContext(ctx).Where("code = ?", currency.NormalizeCode(code)).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindBase finds the active base currency
func (r *GormCurrencyRepository) FindBase(ctx context.Context) (*currency.Currency, error) {
	var model models.CurrencyModel
	if err := r.db.WithContext(ctx).
		Where("is_base = ? AND is_active = ?", true, true).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists currencies ordered by code
func (r *GormCurrencyRepository) FindAll(ctx context.Context, filter currency.CurrencyFilter) ([]currency.Currency, error) {
	query := r.db.WithContext(ctx).Model(&models.CurrencyModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}

	var rows []models.CurrencyModel
	if err := query.Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	currencies := make([]currency.Currency, len(rows))
	for i := range rows {
		currencies[i] = *rows[i].ToDomain()
	}
	return currencies, nil
}

// Create inserts a currency
func (r *GormCurrencyRepository) Create(ctx context.Context, c *currency.Currency) error {
	return translateError(r.db.WithContext(ctx).Create(models.CurrencyModelFromDomain(c)).Error)
}

// Save updates a currency's descriptive fields and active flag. The base
// flag is only ever written by SetBaseExclusive, and the current base
// cannot be deactivated here either.
func (r *GormCurrencyRepository) Save(ctx context.Context, c *currency.Currency) error {
	query := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).Where("id = ?", c.ID)
	if !c.IsActive {
		query = query.Where("is_base = ?", false)
	}
	result := query.Updates(map[string]any{
		"name":           c.Name,
		"symbol":         c.Symbol,
		"decimal_places": c.DecimalPlaces,
		"is_active":      c.IsActive,
		"updated_at":     c.UpdatedAt,
	})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		if !c.IsActive {
			return shared.ErrCannotDeactivateBase
		}
		return shared.ErrNotFound
	}
	return nil
}

// SetBaseExclusive flags code as the base currency and clears every other
// currency in one transaction. All currency rows are locked in id order
// first, so concurrent switches serialize instead of deadlocking.
func (r *GormCurrencyRepository) SetBaseExclusive(ctx context.Context, code string) error {
	code = currency.NormalizeCode(code)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.CurrencyModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return translateError(err)
		}

		var target *models.CurrencyModel
		for i := range rows {
			if rows[i].Code == code {
				target = &rows[i]
				break
			}
		}
		if target == nil || !target.IsActive {
			return shared.ErrUnknownCurrency
		}

		now := time.Now()
		if err := tx.Model(&models.CurrencyModel{}).
			Where("is_base = ? AND code <> ?", true, code).
			Updates(map[string]any{"is_base": false, "updated_at": now}).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Model(&models.CurrencyModel{}).
			Where("code = ?", code).
			Updates(map[string]any{"is_base": true, "updated_at": now}).Error; err != nil {
			return translateError(err)
		}
		return nil
	})
}

// WithinTransaction runs fn with a repository bound to a single transaction.
// SetBaseExclusive called inside it nests as a savepoint.
func (r *GormCurrencyRepository) WithinTransaction(ctx context.Context, fn func(repo currency.CurrencyRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCurrencyRepository{db: tx})
	})
}

var _ currency.CurrencyRepository = (*GormCurrencyRepository)(nil)
