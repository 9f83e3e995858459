package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// RentalPayment records a submitted lease payment. Creating one transitions
// the owning rental to paid in the same transaction.
type RentalPayment struct {
	ID        int64           `db:"id"`
	RentalID  int64           `db:"rental_id"`
	PaymentID string          `db:"payment_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	Status    PaymentStatus   `db:"status"`
	Date      time.Time       `db:"date"`
}
