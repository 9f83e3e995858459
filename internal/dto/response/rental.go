package response

import (
	"time"

	"kubra-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RentalResponse struct {
	ID              int64               `json:"id"`
	MerchantID      int64               `json:"merchantId"`
	Amount          decimal.Decimal     `json:"amount"`
	DueDate         string              `json:"dueDate"`
	Status          entity.RentalStatus `json:"status"`
	LeaseStartDate  *string             `json:"leaseStartDate,omitempty"`
	LeaseEndDate    *string             `json:"leaseEndDate,omitempty"`
	SecurityDeposit *decimal.Decimal    `json:"securityDeposit,omitempty"`
}

type RentalPaymentResponse struct {
	ID        int64                `json:"id"`
	RentalID  int64                `json:"rentalId"`
	PaymentID string               `json:"paymentId"`
	Amount    decimal.Decimal      `json:"amount"`
	Method    string               `json:"method"`
	Status    entity.PaymentStatus `json:"status"`
	Date      time.Time            `json:"date"`
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func RentalToResponse(rental *entity.Rental) RentalResponse {
	resp := RentalResponse{
		ID:              rental.ID,
		MerchantID:      rental.MerchantID,
		Amount:          rental.Amount,
		DueDate:         formatDate(rental.DueDate),
		Status:          rental.Status,
		SecurityDeposit: rental.SecurityDeposit,
	}

	if rental.LeaseStartDate != nil {
		start := formatDate(*rental.LeaseStartDate)
		resp.LeaseStartDate = &start
	}
	if rental.LeaseEndDate != nil {
		end := formatDate(*rental.LeaseEndDate)
		resp.LeaseEndDate = &end
	}

	return resp
}

func RentalPaymentToResponse(payment *entity.RentalPayment) RentalPaymentResponse {
	return RentalPaymentResponse{
		ID:        payment.ID,
		RentalID:  payment.RentalID,
		PaymentID: payment.PaymentID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Status:    payment.Status,
		Date:      payment.Date,
	}
}

func RentalPaymentsToResponse(payments []*entity.RentalPayment) []RentalPaymentResponse {
	responses := make([]RentalPaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = RentalPaymentToResponse(payment)
	}
	return responses
}
