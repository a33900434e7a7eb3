package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll lists every category ordered by code
	FindAll(ctx context.Context) ([]Category, error)

	// ParentOf returns the parent ID of a category, nil for a root. It is a
	// ParentLookup for ValidateParent.
	ParentOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)

	// Create inserts a category, returning shared.ErrAlreadyExists for a duplicate code
	Create(ctx context.Context, category *Category) error

	// Save updates a category
	Save(ctx context.Context, category *Category) error
}
