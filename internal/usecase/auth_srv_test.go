package usecase

import (
	"context"
	"testing"

	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 168,
		},
	}
}

func newAuthFixture() (AuthService, *repository.Repository, *utils.Config) {
	repo := repository.NewMemoryRepository()
	config := testConfig()
	return NewAuthService(repo, config, zap.NewNop()), repo, config
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "merchant1",
		Email:    email,
		Password: "secret123",
		Name:     "Merchant One",
	}
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	svc, _, config := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq("m1@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "m1@example.com", resp.User.Email)

	userID, err := utils.ParseToken(resp.Token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("dup@example.com"))
	require.NoError(t, err)

	req := registerReq("dup@example.com")
	req.Username = "merchant2"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("first@example.com"))
	require.NoError(t, err)

	// Same username under a different email is still a conflict.
	_, err = svc.Register(ctx, registerReq("second@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := registerReq("bad@example.com")
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("login@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("ok@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ok@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}
