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

func newOrderFixture(t *testing.T) (OrderService, *repository.Repository, *entity.Product) {
	t.Helper()
	repo := repository.NewMemoryRepository()

	product := &entity.Product{
		Name:       "Rice 5kg",
		Price:      decimal.RequireFromString("68000"),
		Stock:      40,
		Status:     entity.ProductStatusActive,
		MerchantID: 1,
	}
	require.NoError(t, repo.Product.Create(context.Background(), product))

	return NewOrderService(repo, zap.NewNop()), repo, product
}

func TestCreateOrderComputesTotals(t *testing.T) {
	svc, repo, product := newOrderFixture(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 100, "Budi Santoso", []OrderItemInput{
		{ProductID: product.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("204000")),
		"total = %s", order.Total)

	items, err := repo.Order.FindItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Subtotal.Equal(order.Total))
	assert.Equal(t, product.Name, items[0].Name)
}

func TestCreateOrderRejectsEmptyAndUnknown(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 100, "Budi", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(ctx, 100, "Budi", []OrderItemInput{{ProductID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Create(ctx, 100, "Budi", []OrderItemInput{{ProductID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOrdersScopedToMerchant(t *testing.T) {
	svc, _, product := newOrderFixture(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 100, "Budi", []OrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)

	mine, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = svc.Get(ctx, 2, order.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetItems(ctx, 2, order.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFailedOrderCreateLeavesNoTrace(t *testing.T) {
	_, repo, product := newOrderFixture(t)
	ctx := context.Background()

	newItems := func() []*entity.OrderItem {
		return []*entity.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
			Subtotal:  product.Price,
		}}
	}
	newOrder := func() *entity.Order {
		return &entity.Order{
			OrderNumber:  "ORD-20260310-AAAAAA",
			CustomerID:   100,
			CustomerName: "Budi Santoso",
			Total:        product.Price,
			Status:       entity.OrderStatusPending,
			CreatedAt:    time.Now(),
		}
	}

	first := newOrder()
	require.NoError(t, repo.Order.Create(ctx, first, newItems()))

	// Same order number again: the write fails, and neither the order nor
	// its items become visible.
	dup := newOrder()
	err := repo.Order.Create(ctx, dup, newItems())
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Zero(t, dup.ID)

	orders, err := repo.Order.FindByMerchant(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	items, err := repo.Order.FindItems(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _, product := newOrderFixture(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, 100, "Budi", []OrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, 1, order.ID, &request.UpdateOrderStatusRequest{
		Status: "processing",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)

	_, err = svc.UpdateStatus(ctx, 1, order.ID, &request.UpdateOrderStatusRequest{
		Status: "shipped",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Another merchant cannot touch the order.
	_, err = svc.UpdateStatus(ctx, 2, order.ID, &request.UpdateOrderStatusRequest{
		Status: "completed",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// vanishingOrderRepo accepts the status write but reports the order gone on
// the follow-up read, like a concurrent delete between the two queries.
type vanishingOrderRepo struct {
	repository.OrderRepository
}

func (vanishingOrderRepo) UpdateStatus(context.Context, int64, int64, entity.OrderStatus) error {
	return nil
}

func (vanishingOrderRepo) FindByID(context.Context, int64, int64) (*entity.Order, error) {
	return nil, nil
}

func TestUpdateOrderStatusReloadMiss(t *testing.T) {
	repo := repository.NewMemoryRepository()
	repo.Order = vanishingOrderRepo{}
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), 1, 7, &request.UpdateOrderStatusRequest{
		Status: "completed",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
