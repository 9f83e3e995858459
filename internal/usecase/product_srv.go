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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context, merchantID int64) ([]response.ProductResponse, error)
	Get(ctx context.Context, merchantID, productID int64) (*response.ProductResponse, error)
	Create(ctx context.Context, merchantID int64, req *request.CreateProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, merchantID, productID int64, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, merchantID, productID int64) error
	LowStock(ctx context.Context, merchantID int64, threshold int) ([]response.ProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) List(ctx context.Context, merchantID int64) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

// ownedProduct loads the product and enforces that merchantID owns it.
func (s *productService) ownedProduct(ctx context.Context, merchantID, productID int64) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, apperrors.ErrNotFound)
	}
	if product.MerchantID != merchantID {
		s.log.Warn("Cross-merchant product access attempt",
			zap.Int64("product_id", productID),
			zap.Int64("owner_id", product.MerchantID),
			zap.Int64("caller_id", merchantID))
		return nil, fmt.Errorf("product %d: %w", productID, apperrors.ErrForbidden)
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, merchantID, productID int64) (*response.ProductResponse, error) {
	product, err := s.ownedProduct(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, merchantID int64, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.Cmp(decimal.Zero) <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive decimal", apperrors.ErrValidation)
	}

	status := entity.ProductStatus(req.Status)
	if req.Status == "" {
		status = entity.ProductStatusActive
	}

	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Image:       req.Image,
		Status:      status,
		MerchantID:  merchantID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.Int64("merchant_id", merchantID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, merchantID, productID int64, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	product, err := s.ownedProduct(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.Cmp(decimal.Zero) <= 0 {
			return nil, fmt.Errorf("%w: price must be a positive decimal", apperrors.ErrValidation)
		}
		product.Price = price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Image != nil {
		product.Image = req.Image
	}
	if req.Status != nil {
		product.Status = entity.ProductStatus(*req.Status)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, err
	}

	s.log.Info("Product updated", zap.Int64("product_id", productID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, merchantID, productID int64) error {
	if _, err := s.ownedProduct(ctx, merchantID, productID); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", productID))
		return err
	}

	return nil
}

func (s *productService) LowStock(ctx context.Context, merchantID int64, threshold int) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx, merchantID, threshold)
	if err != nil {
		s.log.Error("Failed to list low stock products",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Int("threshold", threshold))
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}
