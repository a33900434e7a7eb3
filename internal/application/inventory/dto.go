package inventory

import (
	"time"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code               string     `json:"code" binding:"required,min=1,max=50"`
	Name               string     `json:"name" binding:"required,min=1,max=200"`
	Unit               string     `json:"unit" binding:"max=20"`
	CategoryID         *uuid.UUID `json:"category_id"`
	CriticalStockLevel int64      `json:"critical_stock_level" binding:"min=0"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name               *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Unit               *string    `json:"unit" binding:"omitempty,max=20"`
	CategoryID         *uuid.UUID `json:"category_id"`
	ClearCategory      bool       `json:"clear_category"`
	CriticalStockLevel *int64     `json:"critical_stock_level" binding:"omitempty,min=0"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	ActiveOnly bool       `form:"active_only"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by" binding:"omitempty,oneof=code name created_at critical_stock_level"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Code               string     `json:"code"`
	Name               string     `json:"name"`
	Unit               string     `json:"unit"`
	CategoryID         *uuid.UUID `json:"category_id"`
	CriticalStockLevel int64      `json:"critical_stock_level"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Code     string     `json:"code" binding:"required,min=1,max=50"`
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// MoveCategoryRequest re-parents a category; a null parent makes it a root
type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RecordMovementRequest represents a request to append a stock movement
type RecordMovementRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	MovementType string    `json:"movement_type" binding:"required,oneof=in out transfer adjustment"`
	Quantity     int64     `json:"quantity" binding:"required,gt=0"`
	Reference    string    `json:"reference" binding:"max=100"`
	Note         string    `json:"note" binding:"max=500"`
}

// MovementListFilter pages a product's movements
type MovementListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// MovementResponse represents a stock movement in API responses
type MovementResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	MovementType   string    `json:"movement_type"`
	Quantity       int64     `json:"quantity"`
	SignedQuantity int64     `json:"signed_quantity"`
	Reference      string    `json:"reference,omitempty"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementResult is the outcome of a recorded movement
type MovementResult struct {
	Movement   MovementResponse `json:"movement"`
	Stock      int64            `json:"stock"`
	IsCritical bool             `json:"is_critical"`
}

// StockSummaryResponse is a product's derived stock position
type StockSummaryResponse struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductCode        string    `json:"product_code"`
	Stock              int64     `json:"stock"`
	CriticalStockLevel int64     `json:"critical_stock_level"`
	IsCritical         bool      `json:"is_critical"`
}

// AlertResponse represents a critical stock alert
type AlertResponse struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductCode        string    `json:"product_code"`
	ProductName        string    `json:"product_name"`
	CurrentStock       int64     `json:"current_stock"`
	CriticalStockLevel int64     `json:"critical_stock_level"`
	Shortage           int64     `json:"shortage"`
}

// AlertExportResponse describes an uploaded alert report
type AlertExportResponse struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	URLExpires  time.Time `json:"url_expires_at"`
	AlertCount  int       `json:"alert_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Name:               p.Name,
		Unit:               p.Unit,
		CategoryID:         p.CategoryID,
		CriticalStockLevel: p.CriticalStockLevel,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToMovementResponse converts a domain StockMovement to MovementResponse
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		MovementType:   string(m.MovementType),
		Quantity:       m.Quantity,
		SignedQuantity: m.SignedQuantity(),
		Reference:      m.Reference,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

// ToAlertResponse converts a domain Alert to AlertResponse
func ToAlertResponse(a inventory.Alert) AlertResponse {
	return AlertResponse{
		ProductID:          a.ProductID,
		ProductCode:        a.ProductCode,
		ProductName:        a.ProductName,
		CurrentStock:       a.CurrentStock,
		CriticalStockLevel: a.CriticalStockLevel,
		Shortage:           a.Shortage,
	}
}
