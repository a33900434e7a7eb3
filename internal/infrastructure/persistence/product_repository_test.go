package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProduct(t *testing.T, repo *GormProductRepository, code, name string, critical int64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(code, name, "pcs", critical)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestGormProductRepository_CRUD(t *testing.T) {
	repo := NewGormProductRepository(newSQLiteDB(t))
	ctx := context.Background()

	p := createProduct(t, repo, "sku-1", "Widget", 5)

	byCode, err := repo.FindByCode(ctx, "sku-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byCode.ID)
	assert.Equal(t, "SKU-1", byCode.Code)
	assert.Equal(t, int64(5), byCode.CriticalStockLevel)

	dup, err := catalog.NewProduct("SKU-1", "Other", "pcs", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

	require.NoError(t, p.Update("Big Widget", "box"))
	require.NoError(t, p.SetCriticalStockLevel(10))
	p.Deactivate()
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Big Widget", found.Name)
	assert.Equal(t, "box", found.Unit)
	assert.Equal(t, int64(10), found.CriticalStockLevel)
	assert.False(t, found.IsActive)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	ghost, err := catalog.NewProduct("GHOST", "Ghost", "pcs", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, ghost), shared.ErrNotFound)
}

func TestGormProductRepository_FilterAndPage(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormProductRepository(db)
	categories := NewGormCategoryRepository(db)
	ctx := context.Background()

	tools, err := catalog.NewCategory("TOOLS", "Tools")
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, tools))

	for i := 1; i <= 5; i++ {
		p := createProduct(t, repo, fmt.Sprintf("BOLT-%d", i), fmt.Sprintf("Bolt %d", i), 0)
		if i%2 == 0 {
			p.SetCategory(&tools.ID)
			require.NoError(t, repo.Save(ctx, p))
		}
	}
	inactive := createProduct(t, repo, "NUT-1", "Nut", 0)
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))

	filter := catalog.ProductFilter{Filter: shared.Filter{Page: 2, PageSize: 2, OrderBy: "code", OrderDir: "asc"}}
	page, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "BOLT-3", page[0].Code)
	assert.Equal(t, "BOLT-4", page[1].Code)

	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	search := catalog.ProductFilter{Filter: shared.Filter{Search: "bolt"}, ActiveOnly: true}
	n, err := repo.Count(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	byCategory := catalog.ProductFilter{CategoryID: &tools.ID}
	inTools, err := repo.FindAll(ctx, byCategory)
	require.NoError(t, err)
	assert.Len(t, inTools, 2)

	// unknown order columns fall back to created_at
	injected := catalog.ProductFilter{Filter: shared.Filter{OrderBy: "code; DROP TABLE products"}}
	_, err = repo.FindAll(ctx, injected)
	require.NoError(t, err)

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 5)
	for i := 1; i < len(active); i++ {
		assert.Less(t, active[i-1].ID.String(), active[i].ID.String())
	}
}

func TestGormCategoryRepository(t *testing.T) {
	repo := NewGormCategoryRepository(newSQLiteDB(t))
	ctx := context.Background()

	root, err := catalog.NewCategory("ROOT", "Root")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, root))
	child, err := catalog.NewCategory("CHILD", "Child")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, child))

	child.MoveTo(&root.ID)
	require.NoError(t, repo.Save(ctx, child))

	parent, err := repo.ParentOf(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, root.ID, *parent)

	parent, err = repo.ParentOf(ctx, root.ID)
	require.NoError(t, err)
	assert.Nil(t, parent)

	_, err = repo.ParentOf(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// a stored move is visible to cycle detection
	assert.ErrorIs(t, catalog.ValidateParent(ctx, root.ID, child.ID, repo.ParentOf), shared.ErrCircularCategoryReference)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CHILD", all[0].Code)

	dup, err := catalog.NewCategory("ROOT", "Again")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
}
