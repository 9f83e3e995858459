package entity

import (
	"github.com/shopspring/decimal"
)

// OrderItem is immutable once its order is created. Subtotal is expected to
// equal price * quantity; callers compute it, storage does not enforce it.
type OrderItem struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}
