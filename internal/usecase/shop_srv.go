package usecase

import (
	"context"
	"fmt"

	"kubra-market/internal/data/entity"
	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/request"
	"kubra-market/internal/dto/response"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type ShopService interface {
	Get(ctx context.Context, merchantID int64) (*response.ShopResponse, error)
	Create(ctx context.Context, merchantID int64, req *request.CreateShopRequest) (*response.ShopResponse, error)
	Update(ctx context.Context, merchantID int64, req *request.UpdateShopRequest) (*response.ShopResponse, error)
}

type shopService struct {
	shopRepo repository.ShopRepository
	log      *zap.Logger
}

func NewShopService(shopRepo repository.ShopRepository, log *zap.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		log:      log.With(zap.String("service", "shop")),
	}
}

func (s *shopService) Get(ctx context.Context, merchantID int64) (*response.ShopResponse, error) {
	shop, err := s.shopRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to find shop", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, fmt.Errorf("shop for merchant %d: %w", merchantID, apperrors.ErrNotFound)
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) Create(ctx context.Context, merchantID int64, req *request.CreateShopRequest) (*response.ShopResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create shop validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// One shop per merchant; the unique constraint backs this check.
	existing, err := s.shopRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to check existing shop", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to check shop: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("shop for merchant %d: %w", merchantID, apperrors.ErrConflict)
	}

	shop := &entity.Shop{
		MerchantID:    merchantID,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Description:   req.Description,
		Banner:        req.Banner,
		BusinessHours: req.BusinessHours,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		s.log.Warn("Failed to create shop", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, err
	}

	s.log.Info("Shop created",
		zap.Int64("shop_id", shop.ID),
		zap.Int64("merchant_id", merchantID))

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) Update(ctx context.Context, merchantID int64, req *request.UpdateShopRequest) (*response.ShopResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update shop validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	shop, err := s.shopRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to find shop for update", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, fmt.Errorf("shop for merchant %d: %w", merchantID, apperrors.ErrNotFound)
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = req.Phone
	}
	if req.Email != nil {
		shop.Email = req.Email
	}
	if req.Address != nil {
		shop.Address = req.Address
	}
	if req.Description != nil {
		shop.Description = req.Description
	}
	if req.Banner != nil {
		shop.Banner = req.Banner
	}
	if req.BusinessHours != nil {
		shop.BusinessHours = req.BusinessHours
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		s.log.Error("Failed to update shop", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, err
	}

	s.log.Info("Shop updated", zap.Int64("merchant_id", merchantID))

	resp := response.ShopToResponse(shop)
	return &resp, nil
}
