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

func newShopFixture() ShopService {
	repo := repository.NewMemoryRepository()
	return NewShopService(repo.Shop, zap.NewNop())
}

func TestShopLifecycle(t *testing.T) {
	svc := newShopFixture()
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	created, err := svc.Create(ctx, 1, &request.CreateShopRequest{
		Name: "Toko Demo",
		BusinessHours: map[string]string{
			"monday": "08:00-17:00",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.MerchantID)

	// Second shop for the same merchant is rejected.
	_, err = svc.Create(ctx, 1, &request.CreateShopRequest{Name: "Another"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	address := "Blok C-12"
	updated, err := svc.Update(ctx, 1, &request.UpdateShopRequest{
		Address: &address,
	})
	require.NoError(t, err)
	assert.Equal(t, "Toko Demo", updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, address, *updated.Address)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "08:00-17:00", got.BusinessHours["monday"])
}

func TestUpdateShopWithoutProfile(t *testing.T) {
	svc := newShopFixture()

	name := "Ghost"
	_, err := svc.Update(context.Background(), 42, &request.UpdateShopRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
