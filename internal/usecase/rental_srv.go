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

type RentalService interface {
	Get(ctx context.Context, merchantID int64) (*response.RentalResponse, error)
	GetPayments(ctx context.Context, merchantID int64) ([]response.RentalPaymentResponse, error)
	SubmitPayment(ctx context.Context, merchantID int64, req *request.SubmitRentalPaymentRequest) (*response.RentalPaymentResponse, error)
}

type rentalService struct {
	rentalRepo repository.RentalRepository
	log        *zap.Logger
}

func NewRentalService(rentalRepo repository.RentalRepository, log *zap.Logger) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		log:        log.With(zap.String("service", "rental")),
	}
}

func (s *rentalService) merchantRental(ctx context.Context, merchantID int64) (*entity.Rental, error) {
	rental, err := s.rentalRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		s.log.Error("Failed to find rental", zap.Error(err), zap.Int64("merchant_id", merchantID))
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("rental for merchant %d: %w", merchantID, apperrors.ErrNotFound)
	}
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, merchantID int64) (*response.RentalResponse, error) {
	rental, err := s.merchantRental(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *rentalService) GetPayments(ctx context.Context, merchantID int64) ([]response.RentalPaymentResponse, error) {
	rental, err := s.merchantRental(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	payments, err := s.rentalRepo.FindPayments(ctx, rental.ID)
	if err != nil {
		s.log.Error("Failed to find rental payments", zap.Error(err), zap.Int64("rental_id", rental.ID))
		return nil, fmt.Errorf("failed to get rental payments: %w", err)
	}

	return response.RentalPaymentsToResponse(payments), nil
}

func (s *rentalService) SubmitPayment(ctx context.Context, merchantID int64, req *request.SubmitRentalPaymentRequest) (*response.RentalPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Cmp(decimal.Zero) <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive decimal", apperrors.ErrValidation)
	}

	rental, err := s.merchantRental(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	payment := &entity.RentalPayment{
		RentalID:  rental.ID,
		PaymentID: utils.GeneratePaymentID(),
		Amount:    amount,
		Method:    req.Method,
		Status:    entity.PaymentStatusCompleted,
		Date:      time.Now(),
	}

	// One unit: the payment lands and the rental flips to paid, or neither.
	if err := s.rentalRepo.SubmitPayment(ctx, payment); err != nil {
		s.log.Error("Failed to submit rental payment",
			zap.Error(err),
			zap.Int64("rental_id", rental.ID))
		return nil, err
	}

	s.log.Info("Rental payment submitted",
		zap.Int64("rental_id", rental.ID),
		zap.String("payment_id", payment.PaymentID),
		zap.String("amount", amount.String()))

	resp := response.RentalPaymentToResponse(payment)
	return &resp, nil
}
