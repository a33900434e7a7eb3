package catalog

import (
	"strings"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Product is a stocked item. Its on-hand quantity is never stored here; it is
// always derived from the product's stock movements.
type Product struct {
	shared.BaseEntity
	Code               string
	Name               string
	Unit               string
	CategoryID         *uuid.UUID
	CriticalStockLevel int64
	IsActive           bool
}

// NewProduct creates an active product
func NewProduct(code, name, unit string, criticalStockLevel int64) (*Product, error) {
	if err := validateCode("Product", code); err != nil {
		return nil, err
	}
	p := &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		IsActive:   true,
	}
	if err := p.Update(name, unit); err != nil {
		return nil, err
	}
	if err := p.SetCriticalStockLevel(criticalStockLevel); err != nil {
		return nil, err
	}
	return p, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, unit string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrValidation.WithMessage("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.ErrValidation.WithMessage("Product name cannot exceed 200 characters")
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "pcs"
	}
	if len(unit) > 20 {
		return shared.ErrValidation.WithMessage("Unit cannot exceed 20 characters")
	}
	p.Name = name
	p.Unit = unit
	p.Touch()
	return nil
}

// SetCriticalStockLevel sets the threshold at or below which stock is critical
func (p *Product) SetCriticalStockLevel(level int64) error {
	if level < 0 {
		return shared.ErrValidation.WithMessage("Critical stock level cannot be negative")
	}
	p.CriticalStockLevel = level
	p.Touch()
	return nil
}

// SetCategory assigns the product to a category, or clears it with nil
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.Touch()
}

// Activate activates the product
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate hides the product from critical-stock alerts
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

func validateCode(kind, code string) error {
	if code == "" {
		return shared.ErrValidation.WithMessage(kind + " code cannot be empty")
	}
	if len(code) > 50 {
		return shared.ErrValidation.WithMessage(kind + " code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.ErrValidation.WithMessage(kind + " code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
