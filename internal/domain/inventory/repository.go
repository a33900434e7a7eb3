package inventory

import (
	"context"

	"github.com/google/uuid"
)

// MovementFilter pages a product's movement history
type MovementFilter struct {
	Limit  int
	Offset int
}

// MovementRepository defines the interface for stock movement persistence.
// Movements are append-only: there is no update or delete.
type MovementRepository interface {
	// FindByProduct returns every movement of a product, oldest first
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]StockMovement, error)

	// FindByProducts returns every movement of the given products
	FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]StockMovement, error)

	// ListByProduct pages a product's movements, newest first
	ListByProduct(ctx context.Context, productID uuid.UUID, filter MovementFilter) ([]StockMovement, int64, error)

	// Insert appends a movement
	Insert(ctx context.Context, movement *StockMovement) error
}
