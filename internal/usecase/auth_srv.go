package usecase

import (
	"context"
	"fmt"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/internal/dto/response"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Fast-path email and username checks for friendlier messages. The
	// unique constraints in storage remain the actual guarantee.
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, apperrors.ErrConflict)
	}

	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	// 4. Create user
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Warn("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	// 5. Issue token
	token, err := s.issueToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("Merchant registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Same error for unknown email and wrong password
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	// 4. Issue token
	token, err := s.issueToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("Merchant logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *authService) issueToken(userID int64) (string, error) {
	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	return utils.GenerateToken(userID, s.config.JWT.Secret, expiry)
}
