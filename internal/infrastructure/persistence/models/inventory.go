package models

import (
	"time"

	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// StockMovementModel is the persistence model for a ledger entry.
// Rows are only ever inserted.
type StockMovementModel struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID              `gorm:"type:uuid;not null;index:idx_stock_movements_product_created,priority:1"`
	MovementType inventory.MovementType `gorm:"type:varchar(20);not null"`
	Quantity     int64                  `gorm:"not null"`
	Reference    string                 `gorm:"type:varchar(100);not null;default:''"`
	Note         string                 `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt    time.Time              `gorm:"not null;index:idx_stock_movements_product_created,priority:2"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement
func (m *StockMovementModel) ToDomain() inventory.StockMovement {
	return inventory.StockMovement{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		Reference:    m.Reference,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}

// StockMovementModelFromDomain creates a persistence model from a domain StockMovement
func StockMovementModelFromDomain(s *inventory.StockMovement) *StockMovementModel {
	return &StockMovementModel{
		ID:           s.ID,
		ProductID:    s.ProductID,
		MovementType: s.MovementType,
		Quantity:     s.Quantity,
		Reference:    s.Reference,
		Note:         s.Note,
		CreatedAt:    s.CreatedAt,
	}
}
