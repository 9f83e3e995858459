package usecase

import (
	"context"
	"testing"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSalesFixture(t *testing.T) (SalesService, time.Time) {
	t.Helper()
	repo := repository.NewMemoryRepository()

	base := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	amounts := map[int]string{
		0: "150000.50",
		1: "85000.25",
		2: "120000",
	}
	for offset, amount := range amounts {
		sale := &entity.Sale{
			MerchantID: 1,
			Date:       base.AddDate(0, 0, offset),
			Amount:     decimal.RequireFromString(amount),
		}
		require.NoError(t, repo.Sale.Create(context.Background(), sale))
	}
	// Noise from another merchant on the same days.
	require.NoError(t, repo.Sale.Create(context.Background(), &entity.Sale{
		MerchantID: 2,
		Date:       base,
		Amount:     decimal.RequireFromString("999999"),
	}))

	return NewSalesService(repo.Sale, zap.NewNop()), base
}

func TestDailySales(t *testing.T) {
	svc, base := newSalesFixture(t)

	daily, err := svc.Daily(context.Background(), 1, base)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", daily.Date)
	assert.True(t, daily.Amount.Equal(decimal.RequireFromString("150000.50")),
		"amount = %s", daily.Amount)
}

func TestDailySalesEmptyDayIsZero(t *testing.T) {
	svc, base := newSalesFixture(t)

	daily, err := svc.Daily(context.Background(), 1, base.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.True(t, daily.Amount.IsZero())
}

func TestTotalSalesMatchesRangeSum(t *testing.T) {
	svc, base := newSalesFixture(t)
	ctx := context.Background()

	total, err := svc.Total(ctx, 1, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.True(t, total.Amount.Equal(decimal.RequireFromString("355000.75")),
		"amount = %s", total.Amount)

	// The listing over the same range adds up to the same figure.
	sales, err := svc.ByDateRange(ctx, 1, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, sales, 3)

	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.Amount)
	}
	assert.True(t, sum.Equal(total.Amount))
}

func TestTotalSalesPartialRange(t *testing.T) {
	svc, base := newSalesFixture(t)

	total, err := svc.Total(context.Background(), 1, base.AddDate(0, 0, 1), base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, total.Amount.Equal(decimal.RequireFromString("85000.25")))
}

func TestSalesRejectInvertedRange(t *testing.T) {
	svc, base := newSalesFixture(t)
	ctx := context.Background()

	_, err := svc.Total(ctx, 1, base.AddDate(0, 0, 2), base)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ByDateRange(ctx, 1, base.AddDate(0, 0, 2), base)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSalesEmptyRangeIsZero(t *testing.T) {
	svc, base := newSalesFixture(t)

	total, err := svc.Total(context.Background(), 1, base.AddDate(0, 1, 0), base.AddDate(0, 1, 5))
	require.NoError(t, err)
	assert.True(t, total.Amount.IsZero())
}
