package integration

import (
	"context"
	"testing"
	"time"

	"github.com/bizops/backend/internal/domain/catalog"
	"github.com/bizops/backend/internal/domain/currency"
	"github.com/bizops/backend/internal/domain/shared"
	"github.com/bizops/backend/internal/infrastructure/persistence"
	"github.com/bizops/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()
	repo := persistence.NewGormCurrencyRepository(tdb.DB)

	usd, err := currency.NewCurrency("USD", "US Dollar", "$", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, usd))

	t.Run("duplicate code", func(t *testing.T) {
		dup, err := currency.NewCurrency("usd", "Dollar again", "", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("partial index rejects a second base", func(t *testing.T) {
		require.NoError(t, repo.SetBaseExclusive(ctx, "USD"))
		eur, err := currency.NewCurrency("EUR", "Euro", "€", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, eur))

		err = tdb.DB.Exec(`UPDATE currencies SET is_base = true WHERE code = 'EUR'`).Error
		require.Error(t, err)

		base, err := repo.FindBase(ctx)
		require.NoError(t, err)
		assert.Equal(t, "USD", base.Code)
	})
}

func TestExchangeRateRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()
	currencies := persistence.NewGormCurrencyRepository(tdb.DB)
	rates := persistence.NewGormExchangeRateRepository(tdb.DB)

	usd, err := currency.NewCurrency("USD", "US Dollar", "$", nil)
	require.NoError(t, err)
	require.NoError(t, currencies.Create(ctx, usd))

	upsert := func(buy, sell string, y int, m time.Month, d int) *currency.ExchangeRate {
		t.Helper()
		rate, err := currency.NewExchangeRate("USD", decimal.RequireFromString(buy), decimal.RequireFromString(sell),
			testutil.Day(y, m, d), currency.RateSourceManual)
		require.NoError(t, err)
		stored, err := rates.Upsert(ctx, rate)
		require.NoError(t, err)
		return stored
	}

	first := upsert("30", "32", 2024, 3, 1)
	second := upsert("30.5", "32.5", 2024, 3, 1)
	assert.Equal(t, first.ID, second.ID, "upsert keeps the row id")
	assert.True(t, decimal.RequireFromString("30.5").Equal(second.BuyRate))

	upsert("31", "33", 2024, 3, 10)

	t.Run("exact date", func(t *testing.T) {
		rate, err := rates.FindActiveOn(ctx, "USD", testutil.Day(2024, 3, 10))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(31).Equal(rate.BuyRate))
	})

	t.Run("latest on or before", func(t *testing.T) {
		rate, err := rates.FindLatestActiveOnOrBefore(ctx, "USD", testutil.Day(2024, 3, 9))
		require.NoError(t, err)
		assert.Equal(t, first.ID, rate.ID)

		_, err = rates.FindLatestActiveOnOrBefore(ctx, "USD", testutil.Day(2024, 2, 29))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("twelve decimal places are stored exactly", func(t *testing.T) {
		stored := upsert("0.000000000001", "28.123456789012", 2024, 4, 1)
		rate, err := rates.FindActiveOn(ctx, "USD", testutil.Day(2024, 4, 1))
		require.NoError(t, err)
		assert.Equal(t, stored.ID, rate.ID)
		assert.True(t, decimal.RequireFromString("0.000000000001").Equal(rate.BuyRate), rate.BuyRate.String())
		assert.True(t, decimal.RequireFromString("28.123456789012").Equal(rate.SellRate), rate.SellRate.String())
	})

	t.Run("check constraint maps to validation", func(t *testing.T) {
		rate, err := rates.FindActiveOn(ctx, "USD", testutil.Day(2024, 4, 1))
		require.NoError(t, err)
		rate.BuyRate = decimal.Zero
		assert.ErrorIs(t, rates.Save(ctx, rate), shared.ErrValidation)
	})

	t.Run("inactive rates are skipped", func(t *testing.T) {
		second.Deactivate()
		require.NoError(t, rates.Save(ctx, second))
		_, err := rates.FindActiveOn(ctx, "USD", testutil.Day(2024, 3, 1))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductRepository_DuplicateCode(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()
	repo := persistence.NewGormProductRepository(tdb.DB)

	p, err := catalog.NewProduct("SKU-1", "Widget", "pcs", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	dup, err := catalog.NewProduct("SKU-1", "Other", "pcs", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
}
