package usecase

import (
	"context"
	"fmt"

	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/internal/dto/response"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user for update", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}

	// A moved email must not belong to a different account.
	if req.Email != nil && *req.Email != user.Email {
		existing, err := us.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err), zap.String("email", *req.Email))
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil && existing.ID != userID {
			return nil, fmt.Errorf("email %s: %w", *req.Email, apperrors.ErrConflict)
		}
		user.Email = *req.Email
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Warn("Failed to update user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, err
	}

	us.log.Info("Profile updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
