package inventory

import (
	"strings"
	"time"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MovementType is the kind of a stock movement
type MovementType string

const (
	// MovementTypeIn is stock received
	MovementTypeIn MovementType = "in"
	// MovementTypeOut is stock issued
	MovementTypeOut MovementType = "out"
	// MovementTypeTransfer is stock moved between locations. It does not
	// change the product's own total.
	MovementTypeTransfer MovementType = "transfer"
	// MovementTypeAdjustment is a positive correction found at a count
	MovementTypeAdjustment MovementType = "adjustment"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeTransfer, MovementTypeAdjustment:
		return true
	}
	return false
}

// Sign returns the multiplier applied to a movement's quantity when folding
// a product's stock: +1 for in and adjustment, -1 for out, 0 for transfer.
func (t MovementType) Sign() int64 {
	switch t {
	case MovementTypeIn, MovementTypeAdjustment:
		return 1
	case MovementTypeOut:
		return -1
	case MovementTypeTransfer:
		return 0
	}
	return 0
}

// ParseMovementType parses a case-insensitive movement type.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", shared.ErrValidation.WithMessage("Movement type must be one of in, out, transfer, adjustment")
	}
	return t, nil
}

// StockMovement is an immutable ledger entry. Corrections are new movements.
type StockMovement struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	MovementType MovementType
	Quantity     int64
	Reference    string
	Note         string
	CreatedAt    time.Time
}

// NewStockMovement validates and creates a movement.
func NewStockMovement(productID uuid.UUID, movementType MovementType, quantity int64) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.ErrValidation.WithMessage("Product ID is required")
	}
	if !movementType.IsValid() {
		return nil, shared.ErrValidation.WithMessage("Movement type must be one of in, out, transfer, adjustment")
	}
	if quantity <= 0 {
		return nil, shared.ErrValidation.WithMessage("Quantity must be positive")
	}
	return &StockMovement{
		ID:           uuid.New(),
		ProductID:    productID,
		MovementType: movementType,
		Quantity:     quantity,
		CreatedAt:    time.Now(),
	}, nil
}

// WithReference sets the external document reference
func (m *StockMovement) WithReference(reference string) *StockMovement {
	m.Reference = strings.TrimSpace(reference)
	return m
}

// WithNote sets a free-text note
func (m *StockMovement) WithNote(note string) *StockMovement {
	m.Note = strings.TrimSpace(note)
	return m
}

// SignedQuantity is the movement's contribution to the product's stock.
func (m StockMovement) SignedQuantity() int64 {
	return m.MovementType.Sign() * m.Quantity
}
