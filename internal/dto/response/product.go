package response

import (
	"kubra-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Price       decimal.Decimal      `json:"price"`
	Stock       int                  `json:"stock"`
	Image       *string              `json:"image,omitempty"`
	Status      entity.ProductStatus `json:"status"`
	MerchantID  int64                `json:"merchantId"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Image:       product.Image,
		Status:      product.Status,
		MerchantID:  product.MerchantID,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}
