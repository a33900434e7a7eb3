package persistence

import (
	"context"
	"testing"

	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCurrency(t *testing.T, repo *GormCurrencyRepository, code, name string) *currency.Currency {
	t.Helper()
	c, err := currency.NewCurrency(code, name, "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func countBase(t *testing.T, repo *GormCurrencyRepository) int64 {
	t.Helper()
	var n int64
	require.NoError(t, repo.db.Model(&models.CurrencyModel{}).Where("is_base = ?", true).Count(&n).Error)
	return n
}

func TestGormCurrencyRepository_CreateAndFind(t *testing.T) {
	repo := NewGormCurrencyRepository(newSQLiteDB(t))
	ctx := context.Background()

	created := createCurrency(t, repo, "usd", "US Dollar")

	found, err := repo.FindByCode(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 2, found.DecimalPlaces)
	assert.True(t, found.IsActive)

	_, err = repo.FindByCode(ctx, "EUR")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	dup, err := currency.NewCurrency("USD", "Dup", "", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
}

func TestGormCurrencyRepository_FindAll(t *testing.T) {
	repo := NewGormCurrencyRepository(newSQLiteDB(t))
	ctx := context.Background()
	createCurrency(t, repo, "USD", "US Dollar")
	createCurrency(t, repo, "EUR", "Euro")
	jpy := createCurrency(t, repo, "JPY", "Japanese Yen")
	jpy.IsActive = false
	require.NoError(t, repo.Save(ctx, jpy))

	all, err := repo.FindAll(ctx, currency.CurrencyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"EUR", "JPY", "USD"}, []string{all[0].Code, all[1].Code, all[2].Code})

	active, err := repo.FindAll(ctx, currency.CurrencyFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	searched, err := repo.FindAll(ctx, currency.CurrencyFilter{Search: "dollar"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "USD", searched[0].Code)
}

func TestGormCurrencyRepository_SetBaseExclusive(t *testing.T) {
	repo := NewGormCurrencyRepository(newSQLiteDB(t))
	ctx := context.Background()
	createCurrency(t, repo, "TRY", "Turkish Lira")
	createCurrency(t, repo, "USD", "US Dollar")

	_, err := repo.FindBase(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, repo.SetBaseExclusive(ctx, "TRY"))
	base, err := repo.FindBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TRY", base.Code)

	require.NoError(t, repo.SetBaseExclusive(ctx, "usd"))
	base, err = repo.FindBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", base.Code)
	assert.Equal(t, int64(1), countBase(t, repo))

	assert.ErrorIs(t, repo.SetBaseExclusive(ctx, "GBP"), shared.ErrUnknownCurrency)
	assert.Equal(t, int64(1), countBase(t, repo))
}

func TestGormCurrencyRepository_SaveDoesNotTouchBaseFlag(t *testing.T) {
	repo := NewGormCurrencyRepository(newSQLiteDB(t))
	ctx := context.Background()
	try := createCurrency(t, repo, "TRY", "Turkish Lira")
	require.NoError(t, repo.SetBaseExclusive(ctx, "TRY"))

	// stale copy still says is_base=false
	require.NoError(t, try.Rename("Lira", "₺"))
	require.NoError(t, repo.Save(ctx, try))

	base, err := repo.FindBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lira", base.Name)
	assert.Equal(t, "₺", base.Symbol)

	try.IsActive = false
	assert.ErrorIs(t, repo.Save(ctx, try), shared.ErrCannotDeactivateBase)
}

func TestGormCurrencyRepository_WithinTransaction(t *testing.T) {
	repo := NewGormCurrencyRepository(newSQLiteDB(t))
	ctx := context.Background()
	createCurrency(t, repo, "USD", "US Dollar")
	require.NoError(t, repo.SetBaseExclusive(ctx, "USD"))

	t.Run("rolls back the write when the base switch fails", func(t *testing.T) {
		err := repo.WithinTransaction(ctx, func(tx currency.CurrencyRepository) error {
			eur, err := currency.NewCurrency("EUR", "Euro", "€", nil)
			require.NoError(t, err)
			if err := tx.Create(ctx, eur); err != nil {
				return err
			}
			return tx.SetBaseExclusive(ctx, "GBP")
		})
		assert.ErrorIs(t, err, shared.ErrUnknownCurrency)

		_, err = repo.FindByCode(ctx, "EUR")
		assert.ErrorIs(t, err, shared.ErrNotFound)
		base, err := repo.FindBase(ctx)
		require.NoError(t, err)
		assert.Equal(t, "USD", base.Code)
	})

	t.Run("commits the write and the switch together", func(t *testing.T) {
		err := repo.WithinTransaction(ctx, func(tx currency.CurrencyRepository) error {
			eur, err := currency.NewCurrency("EUR", "Euro", "€", nil)
			require.NoError(t, err)
			if err := tx.Create(ctx, eur); err != nil {
				return err
			}
			return tx.SetBaseExclusive(ctx, "EUR")
		})
		require.NoError(t, err)

		base, err := repo.FindBase(ctx)
		require.NoError(t, err)
		assert.Equal(t, "EUR", base.Code)
		assert.Equal(t, int64(1), countBase(t, repo))
	})
}
