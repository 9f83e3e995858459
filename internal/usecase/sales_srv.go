package usecase

import (
	"context"
	"fmt"
	"time"

	"kubra-market/internal/data/repository"
	"kubra-market/internal/dto/response"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type SalesService interface {
	Daily(ctx context.Context, merchantID int64, date time.Time) (*response.DailySalesResponse, error)
	Total(ctx context.Context, merchantID int64, startDate, endDate time.Time) (*response.TotalSalesResponse, error)
	ByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) ([]response.SaleResponse, error)
}

type salesService struct {
	saleRepo repository.SaleRepository
	log      *zap.Logger
}

func NewSalesService(saleRepo repository.SaleRepository, log *zap.Logger) SalesService {
	return &salesService{
		saleRepo: saleRepo,
		log:      log.With(zap.String("service", "sales")),
	}
}

func (s *salesService) Daily(ctx context.Context, merchantID int64, date time.Time) (*response.DailySalesResponse, error) {
	total, err := s.saleRepo.SumByDate(ctx, merchantID, utils.DateOnly(date))
	if err != nil {
		s.log.Error("Failed to sum daily sales",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("date", date))
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}

	return &response.DailySalesResponse{
		Date:   date.Format("2006-01-02"),
		Amount: total,
	}, nil
}

func (s *salesService) Total(ctx context.Context, merchantID int64, startDate, endDate time.Time) (*response.TotalSalesResponse, error) {
	startDate = utils.DateOnly(startDate)
	endDate = utils.DateOnly(endDate)
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", apperrors.ErrValidation)
	}

	total, err := s.saleRepo.SumByDateRange(ctx, merchantID, startDate, endDate)
	if err != nil {
		s.log.Error("Failed to sum sales",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate))
		return nil, fmt.Errorf("failed to get total sales: %w", err)
	}

	return &response.TotalSalesResponse{
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
		Amount:    total,
	}, nil
}

func (s *salesService) ByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) ([]response.SaleResponse, error) {
	startDate = utils.DateOnly(startDate)
	endDate = utils.DateOnly(endDate)
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", apperrors.ErrValidation)
	}

	sales, err := s.saleRepo.FindByDateRange(ctx, merchantID, startDate, endDate)
	if err != nil {
		s.log.Error("Failed to list sales",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return response.SalesToResponse(sales), nil
}
