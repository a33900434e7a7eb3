package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree maps a category to its parent; uuid.Nil marks a root.
type tree map[uuid.UUID]uuid.UUID

func (tr tree) lookup(_ context.Context, id uuid.UUID) (*uuid.UUID, error) {
	parent, ok := tr[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if parent == uuid.Nil {
		return nil, nil
	}
	return &parent, nil
}

func TestNewCategory(t *testing.T) {
	t.Run("creates root category with valid inputs", func(t *testing.T) {
		category, err := NewCategory("electronics", "Electronics")
		require.NoError(t, err)
		assert.Equal(t, "ELECTRONICS", category.Code)
		assert.Equal(t, "Electronics", category.Name)
		assert.True(t, category.IsRoot())
		assert.NotEqual(t, uuid.Nil, category.ID)
	})

	t.Run("rejects invalid code", func(t *testing.T) {
		_, err := NewCategory("bad code!", "Bad")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("EMPTY", "  ")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestValidateParent(t *testing.T) {
	root, child, grandchild, other := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	tr := tree{
		root:       uuid.Nil,
		child:      root,
		grandchild: child,
		other:      uuid.Nil,
	}
	ctx := context.Background()

	tests := []struct {
		name     string
		category uuid.UUID
		parent   uuid.UUID
		wantErr  error
	}{
		{"unrelated parent is fine", child, other, nil},
		{"moving under an ancestor is fine", grandchild, root, nil},
		{"self parent", child, child, shared.ErrCircularCategoryReference},
		{"direct child as parent", root, child, shared.ErrCircularCategoryReference},
		{"descendant as parent", root, grandchild, shared.ErrCircularCategoryReference},
		{"missing parent", child, uuid.New(), shared.ErrInvalidCategoryReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParent(ctx, tt.category, tt.parent, tr.lookup)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateParent_StopsOnStoredCycle(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	// a -> b -> a is already corrupt in storage
	tr := tree{a: b, b: a, c: uuid.Nil}

	err := ValidateParent(context.Background(), c, a, tr.lookup)
	assert.ErrorIs(t, err, shared.ErrCircularCategoryReference)
}

func TestValidateParent_DepthBound(t *testing.T) {
	tr := tree{}
	prev := uuid.Nil
	var deepest uuid.UUID
	for i := 0; i < MaxCategoryDepth+5; i++ {
		id := uuid.New()
		tr[id] = prev
		prev = id
		deepest = id
	}

	err := ValidateParent(context.Background(), uuid.New(), deepest, tr.lookup)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestValidateParent_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	lookup := func(context.Context, uuid.UUID) (*uuid.UUID, error) { return nil, boom }

	err := ValidateParent(context.Background(), uuid.New(), uuid.New(), lookup)
	assert.ErrorIs(t, err, boom)
}
