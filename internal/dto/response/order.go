package response

import (
	"time"

	"kubra-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID           int64              `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	CustomerID   int64              `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Total        decimal.Decimal    `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type OrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Total:        order.Total,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal,
	}
}

func OrderItemsToResponse(items []*entity.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		responses[i] = OrderItemToResponse(item)
	}
	return responses
}
