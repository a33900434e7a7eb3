package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appinv "github.com/bizops/backend/internal/application/inventory"
	"github.com/bizops/backend/internal/domain/inventory"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func insertMovement(t *testing.T, repo inventory.MovementRepository, productID uuid.UUID, mt inventory.MovementType, qty int64, at time.Time) *inventory.StockMovement {
	t.Helper()
	m, err := inventory.NewStockMovement(productID, mt, qty)
	require.NoError(t, err)
	m.CreatedAt = at
	require.NoError(t, repo.Insert(context.Background(), m))
	return m
}

func TestGormStockMovementRepository_History(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormStockMovementRepository(db)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	insertMovement(t, repo, a, inventory.MovementTypeIn, 10, base.Add(2*time.Minute))
	insertMovement(t, repo, a, inventory.MovementTypeOut, 3, base.Add(time.Minute))
	insertMovement(t, repo, b, inventory.MovementTypeIn, 7, base)
	insertMovement(t, repo, a, inventory.MovementTypeTransfer, 4, base.Add(3*time.Minute))

	history, err := repo.FindByProduct(ctx, a)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, inventory.MovementTypeOut, history[0].MovementType)
	assert.Equal(t, inventory.MovementTypeTransfer, history[2].MovementType)
	assert.Equal(t, int64(7), inventory.CurrentStock(history))

	both, err := repo.FindByProducts(ctx, []uuid.UUID{a, b})
	require.NoError(t, err)
	assert.Len(t, both, 4)

	none, err := repo.FindByProducts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	page, total, err := repo.ListByProduct(ctx, a, inventory.MovementFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, inventory.MovementTypeTransfer, page[0].MovementType)
	assert.Equal(t, inventory.MovementTypeIn, page[1].MovementType)

	rest, total, err := repo.ListByProduct(ctx, a, inventory.MovementFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rest, 1)
	assert.Equal(t, inventory.MovementTypeOut, rest[0].MovementType)
}

func TestGormStockTransactionScope_RollsBack(t *testing.T) {
	db := newSQLiteDB(t)
	products := NewGormProductRepository(db)
	movements := NewGormStockMovementRepository(db)
	scope := NewGormStockTransactionScope(db)
	ctx := context.Background()
	p := createProduct(t, products, "SKU-TX", "Tx", 0)

	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		locked, err := repos.LockProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Code, locked.Code)
		insertMovement(t, repos.MovementRepo(), p.ID, inventory.MovementTypeIn, 5, time.Now())
		return boom
	})
	assert.ErrorIs(t, err, boom)

	history, err := movements.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	err = scope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		_, err := repos.LockProduct(ctx, uuid.New())
		return err
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStockLedger_ConcurrentIssuesNeverOverdraw(t *testing.T) {
	db := newSQLiteDB(t)
	products := NewGormProductRepository(db)
	movements := NewGormStockMovementRepository(db)
	ledger := appinv.NewStockLedger(products, movements, NewGormStockTransactionScope(db), zap.NewNop(), nil)
	ctx := context.Background()

	p := createProduct(t, products, "SKU-RACE", "Race", 2)
	_, err := ledger.RecordMovement(ctx, appinv.RecordMovementRequest{
		ProductID: p.ID, MovementType: "in", Quantity: 5,
	})
	require.NoError(t, err)

	const workers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.RecordMovement(ctx, appinv.RecordMovementRequest{
				ProductID: p.ID, MovementType: "out", Quantity: 2,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, shared.ErrInsufficientStock):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, workers-2, rejected)

	stock, err := ledger.CurrentStock(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stock)

	critical, err := ledger.IsCritical(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, critical)

	alerts, err := ledger.CriticalAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(1), alerts[0].Shortage)
}
