package usecase

import (
	"context"
	"testing"

	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductFixture() (ProductService, *repository.Repository) {
	repo := repository.NewMemoryRepository()
	return NewProductService(repo.Product, zap.NewNop()), repo
}

func strptr(s string) *string { return &s }

func intptr(n int) *int { return &n }

func TestCreateProductDefaultsToActive(t *testing.T) {
	svc, _ := newProductFixture()

	product, err := svc.Create(context.Background(), 1, &request.CreateProductRequest{
		Name:  "Rice 5kg",
		Price: "68000",
		Stock: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "active", string(product.Status))
	assert.Equal(t, "68000", product.Price.String())
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	for _, price := range []string{"0", "-5", "abc"} {
		_, err := svc.Create(ctx, 1, &request.CreateProductRequest{
			Name:  "Bad",
			Price: price,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation, "price %q", price)
	}
}

func TestGetProductCrossMerchant(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, &request.CreateProductRequest{
		Name:  "Sugar 1kg",
		Price: "14500",
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	got, err := svc.Get(ctx, 1, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
}

func TestUpdateProductMergesFields(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, &request.CreateProductRequest{
		Name:  "Oil 1L",
		Price: "19500",
		Stock: 10,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, product.ID, &request.UpdateProductRequest{
		Stock:  intptr(3),
		Status: strptr("archived"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oil 1L", updated.Name)
	assert.Equal(t, "19500", updated.Price.String())
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "archived", string(updated.Status))
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, &request.CreateProductRequest{
		Name:  "Water",
		Price: "42000",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, product.ID))

	_, err = svc.Get(ctx, 1, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProductOtherMerchant(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, &request.CreateProductRequest{
		Name:  "Noodles",
		Price: "105000",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, 2, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestLowStockOrdering(t *testing.T) {
	svc, _ := newProductFixture()
	ctx := context.Background()

	stocks := []int{8, 3, 15, 3, 0}
	for i, stock := range stocks {
		_, err := svc.Create(ctx, 1, &request.CreateProductRequest{
			Name:  "P" + string(rune('A'+i)),
			Price: "1000",
			Stock: stock,
		})
		require.NoError(t, err)
	}
	// Another merchant's product never shows up.
	_, err := svc.Create(ctx, 2, &request.CreateProductRequest{
		Name:  "Other",
		Price: "1000",
		Stock: 1,
	})
	require.NoError(t, err)

	low, err := svc.LowStock(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, low, 4)

	// Ascending stock, then id for equal stock.
	assert.Equal(t, 0, low[0].Stock)
	assert.Equal(t, 3, low[1].Stock)
	assert.Equal(t, 3, low[2].Stock)
	assert.Less(t, low[1].ID, low[2].ID)
	assert.Equal(t, 8, low[3].Stock)
}
