package usecase

import (
	"context"
	"testing"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture(t *testing.T) (UserService, *entity.User) {
	t.Helper()
	repo := repository.NewMemoryRepository()

	user := &entity.User{
		Username:     "merchant1",
		Email:        "m1@example.com",
		PasswordHash: "irrelevant",
		Name:         "Merchant One",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.User.Create(context.Background(), user))

	other := &entity.User{
		Username:     "merchant2",
		Email:        "m2@example.com",
		PasswordHash: "irrelevant",
		Name:         "Merchant Two",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.User.Create(context.Background(), other))

	return NewUserService(repo.User, zap.NewNop()), user
}

func TestGetProfile(t *testing.T) {
	svc, user := newUserFixture(t)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	name := "Renamed Merchant"
	phone := "081234567890"
	profile, err := svc.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, name, profile.Name)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, phone, *profile.Phone)
	// Untouched fields survive.
	assert.Equal(t, user.Email, profile.Email)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, user := newUserFixture(t)

	taken := "m2@example.com"
	_, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Email: &taken,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
