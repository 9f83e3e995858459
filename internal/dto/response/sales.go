package response

import (
	"kubra-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type DailySalesResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type TotalSalesResponse struct {
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Amount    decimal.Decimal `json:"amount"`
}

type SaleResponse struct {
	ID         int64           `json:"id"`
	MerchantID int64           `json:"merchantId"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
}

func SaleToResponse(sale *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:         sale.ID,
		MerchantID: sale.MerchantID,
		Date:       formatDate(sale.Date),
		Amount:     sale.Amount,
	}
}

func SalesToResponse(sales []*entity.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = SaleToResponse(sale)
	}
	return responses
}
