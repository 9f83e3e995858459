package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRentalFixture(t *testing.T) (RentalService, *repository.Repository, *entity.Rental) {
	t.Helper()
	repo := repository.NewMemoryRepository()

	rental := &entity.Rental{
		MerchantID: 1,
		Amount:     decimal.RequireFromString("500000"),
		DueDate:    time.Now().AddDate(0, 1, 0),
		Status:     entity.RentalStatusPending,
	}
	require.NoError(t, repo.Rental.Create(context.Background(), rental))

	return NewRentalService(repo.Rental, zap.NewNop()), repo, rental
}

func TestSubmitPaymentMarksRentalPaid(t *testing.T) {
	svc, repo, rental := newRentalFixture(t)
	ctx := context.Background()

	payment, err := svc.SubmitPayment(ctx, 1, &request.SubmitRentalPaymentRequest{
		Amount: "500000",
		Method: "bank_transfer",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payment.PaymentID, "PAY-"))
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.True(t, payment.Amount.Equal(rental.Amount))

	reloaded, err := repo.Rental.FindByMerchant(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalStatusPaid, reloaded.Status)

	payments, err := svc.GetPayments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, payment.PaymentID, payments[0].PaymentID)
}

func TestSubmitPaymentValidation(t *testing.T) {
	svc, _, _ := newRentalFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitPayment(ctx, 1, &request.SubmitRentalPaymentRequest{
		Amount: "-100",
		Method: "cash",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.SubmitPayment(ctx, 1, &request.SubmitRentalPaymentRequest{
		Amount: "100",
		Method: "crypto",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRentalScopedToMerchant(t *testing.T) {
	svc, repo, rental := newRentalFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.SubmitPayment(ctx, 2, &request.SubmitRentalPaymentRequest{
		Amount: "100",
		Method: "cash",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The failed submission recorded nothing and moved nothing.
	payments, err := repo.Rental.FindPayments(ctx, rental.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalStatusPending, got.Status)
}

func TestFailedPaymentLeavesNoTrace(t *testing.T) {
	_, repo, rental := newRentalFixture(t)
	ctx := context.Background()

	// A payment naming a rental that does not exist fails outright.
	err := repo.Rental.SubmitPayment(ctx, &entity.RentalPayment{
		RentalID:  999,
		PaymentID: "PAY-DEADBEEF",
		Amount:    decimal.RequireFromString("100"),
		Method:    "cash",
		Status:    entity.PaymentStatusCompleted,
		Date:      time.Now(),
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// No payment row anywhere, and the real rental is untouched.
	payments, err := repo.Rental.FindPayments(ctx, rental.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	reloaded, err := repo.Rental.FindByMerchant(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.RentalStatusPending, reloaded.Status)
}
