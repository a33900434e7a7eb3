package models

import (
	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductModel is the persistence model for the Product domain entity.
// It has no quantity column: stock is folded from stock_movements.
type ProductModel struct {
	BaseModel
	Code               string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name               string     `gorm:"type:varchar(200);not null"`
	Unit               string     `gorm:"type:varchar(20);not null;default:''"`
	CategoryID         *uuid.UUID `gorm:"type:uuid;index"`
	CriticalStockLevel int64      `gorm:"not null;default:0"`
	IsActive           bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:         m.BaseModel.ToDomain(),
		Code:               m.Code,
		Name:               m.Name,
		Unit:               m.Unit,
		CategoryID:         m.CategoryID,
		CriticalStockLevel: m.CriticalStockLevel,
		IsActive:           m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Code = p.Code
	m.Name = p.Name
	m.Unit = p.Unit
	m.CategoryID = p.CategoryID
	m.CriticalStockLevel = p.CriticalStockLevel
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Code     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string     `gorm:"type:varchar(100);not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		ParentID:   m.ParentID,
	}
}

// FromDomain populates the persistence model from a domain Category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Code = c.Code
	m.Name = c.Name
	m.ParentID = c.ParentID
}

// CategoryModelFromDomain creates a new persistence model from a domain Category
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}
