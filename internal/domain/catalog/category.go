package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxCategoryDepth bounds the ancestor walk
const MaxCategoryDepth = 32

// Category groups products into a tree
type Category struct {
	shared.BaseEntity
	Code     string
	Name     string
	ParentID *uuid.UUID
}

// NewCategory creates a root category
func NewCategory(code, name string) (*Category, error) {
	if err := validateCode("Category", code); err != nil {
		return nil, err
	}
	c := &Category{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
	}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename updates the category's display name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrValidation.WithMessage("Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.ErrValidation.WithMessage("Category name cannot exceed 100 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// ParentLookup returns the parent of a category. It returns
// shared.ErrNotFound when the category itself does not exist, and a nil
// parent for a root.
type ParentLookup func(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)

// ValidateParent checks that parentID can become the parent of categoryID:
// the parent must exist and must not be categoryID or one of its descendants.
// It walks up from parentID iteratively, remembering every node it has seen,
// so a cycle already present in storage terminates the walk.
func ValidateParent(ctx context.Context, categoryID, parentID uuid.UUID, parentOf ParentLookup) error {
	if parentID == categoryID {
		return shared.ErrCircularCategoryReference
	}

	visited := map[uuid.UUID]struct{}{}
	current := parentID
	for depth := 0; ; depth++ {
		if depth >= MaxCategoryDepth {
			return shared.ErrValidation.WithMessage(fmt.Sprintf("Category depth cannot exceed %d levels", MaxCategoryDepth))
		}
		if _, seen := visited[current]; seen {
			return shared.ErrCircularCategoryReference
		}
		visited[current] = struct{}{}

		next, err := parentOf(ctx, current)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				if current == parentID {
					return shared.ErrInvalidCategoryReference
				}
				// dangling ancestor: the chain ends here
				return nil
			}
			return err
		}
		if next == nil {
			return nil
		}
		if *next == categoryID {
			return shared.ErrCircularCategoryReference
		}
		current = *next
	}
}

// MoveTo re-parents the category after ValidateParent succeeded, or makes it
// a root when parentID is nil.
func (c *Category) MoveTo(parentID *uuid.UUID) {
	c.ParentID = parentID
	c.Touch()
}
