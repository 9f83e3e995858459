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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderItemInput names a product and quantity when recording a new order.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

type OrderService interface {
	List(ctx context.Context, merchantID int64) ([]response.OrderResponse, error)
	Get(ctx context.Context, merchantID, orderID int64) (*response.OrderResponse, error)
	GetItems(ctx context.Context, merchantID, orderID int64) ([]response.OrderItemResponse, error)
	UpdateStatus(ctx context.Context, merchantID, orderID int64, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)

	// Create records an order placed against the merchant's products.
	// Not exposed over the dashboard API; used by storefront-side callers
	// and the seed tooling.
	Create(ctx context.Context, customerID int64, customerName string, items []OrderItemInput) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) List(ctx context.Context, merchantID int64) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) Get(ctx context.Context, merchantID, orderID int64) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, merchantID, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetItems(ctx context.Context, merchantID, orderID int64) ([]response.OrderItemResponse, error) {
	// The scope check rides on the order lookup.
	order, err := s.repo.Order.FindByID(ctx, merchantID, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
	}

	items, err := s.repo.Order.FindItems(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order items", zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return response.OrderItemsToResponse(items), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, merchantID, orderID int64, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	status := entity.OrderStatus(req.Status)
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, req.Status)
	}

	if err := s.repo.Order.UpdateStatus(ctx, merchantID, orderID, status); err != nil {
		s.log.Warn("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("status", req.Status))
		return nil, err
	}

	order, err := s.repo.Order.FindByID(ctx, merchantID, orderID)
	if err != nil {
		s.log.Error("Failed to reload order after status update",
			zap.Error(err), zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("failed to reload order %d: %w", orderID, err)
	}
	if order == nil {
		// The order left the merchant's scope between the update and the
		// reload; report it like any other miss.
		return nil, fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", req.Status))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Create(ctx context.Context, customerID int64, customerName string, items []OrderItemInput) (*response.OrderResponse, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", apperrors.ErrValidation)
	}

	orderItems := make([]*entity.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, input := range items {
		if input.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
		}

		product, err := s.repo.Product.FindByID(ctx, input.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %d: %w", input.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("product %d: %w", input.ProductID, apperrors.ErrNotFound)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(subtotal)

		orderItems = append(orderItems, &entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  input.Quantity,
			Subtotal:  subtotal,
		})
	}

	order := &entity.Order{
		OrderNumber:  utils.GenerateOrderNumber(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Total:        total,
		Status:       entity.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Order.Create(ctx, order, orderItems); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber))
		return nil, err
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(orderItems)))

	resp := response.OrderToResponse(order)
	return &resp, nil
}
