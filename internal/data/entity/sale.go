package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an append-only revenue record, one or more per merchant per day.
// Date carries calendar-day precision only.
type Sale struct {
	ID         int64           `db:"id"`
	MerchantID int64           `db:"merchant_id"`
	Date       time.Time       `db:"date"`
	Amount     decimal.Decimal `db:"amount"`
}
