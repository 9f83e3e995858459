package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the closed status set.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64           `db:"id"`
	OrderNumber  string          `db:"order_number"`
	CustomerID   int64           `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	Total        decimal.Decimal `db:"total"`
	Status       OrderStatus     `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}
