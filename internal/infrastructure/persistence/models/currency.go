package models

import (
	"time"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/shopspring/decimal"
)

// CurrencyModel is the persistence model for the Currency domain entity.
type CurrencyModel struct {
	BaseModel
	Code          string `gorm:"type:varchar(3);not null;uniqueIndex"`
	Name          string `gorm:"type:varchar(100);not null"`
	Symbol        string `gorm:"type:varchar(10);not null;default:''"`
	DecimalPlaces int    `gorm:"not null;default:2"`
	IsBase        bool   `gorm:"not null;default:false"`
	IsActive      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CurrencyModel) TableName() string {
	return "currencies"
}

// ToDomain converts the persistence model to a domain Currency
func (m *CurrencyModel) ToDomain() *currency.Currency {
	return &currency.Currency{
		BaseEntity:    m.BaseModel.ToDomain(),
		Code:          m.Code,
		Name:          m.Name,
		Symbol:        m.Symbol,
		DecimalPlaces: m.DecimalPlaces,
		IsBase:        m.IsBase,
		IsActive:      m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Currency
func (m *CurrencyModel) FromDomain(c *currency.Currency) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Code = c.Code
	m.Name = c.Name
	m.Symbol = c.Symbol
	m.DecimalPlaces = c.DecimalPlaces
	m.IsBase = c.IsBase
	m.IsActive = c.IsActive
}

// CurrencyModelFromDomain creates a new persistence model from a domain Currency
func CurrencyModelFromDomain(c *currency.Currency) *CurrencyModel {
	m := &CurrencyModel{}
	m.FromDomain(c)
	return m
}

// ExchangeRateModel is the persistence model for the ExchangeRate domain entity.
// (currency_code, rate_date) is unique; an upsert overwrites the row in place.
type ExchangeRateModel struct {
	BaseModel
	CurrencyCode string              `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_code_date,priority:1"`
	BuyRate      decimal.Decimal     `gorm:"type:decimal(24,12);not null"`
	SellRate     decimal.Decimal     `gorm:"type:decimal(24,12);not null"`
	RateDate     time.Time           `gorm:"type:date;not null;uniqueIndex:idx_exchange_rates_code_date,priority:2"`
	Source       currency.RateSource `gorm:"type:varchar(20);not null;default:'manual'"`
	IsActive     bool                `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}

// ToDomain converts the persistence model to a domain ExchangeRate
func (m *ExchangeRateModel) ToDomain() *currency.ExchangeRate {
	return &currency.ExchangeRate{
		BaseEntity:   m.BaseModel.ToDomain(),
		CurrencyCode: m.CurrencyCode,
		BuyRate:      m.BuyRate,
		SellRate:     m.SellRate,
		RateDate:     currency.NormalizeDate(m.RateDate),
		Source:       m.Source,
		IsActive:     m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain ExchangeRate
func (m *ExchangeRateModel) FromDomain(r *currency.ExchangeRate) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.CurrencyCode = r.CurrencyCode
	m.BuyRate = r.BuyRate
	m.SellRate = r.SellRate
	m.RateDate = currency.NormalizeDate(r.RateDate)
	m.Source = r.Source
	m.IsActive = r.IsActive
}

// ExchangeRateModelFromDomain creates a new persistence model from a domain ExchangeRate
func ExchangeRateModelFromDomain(r *currency.ExchangeRate) *ExchangeRateModel {
	m := &ExchangeRateModel{}
	m.FromDomain(r)
	return m
}
