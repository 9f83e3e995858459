package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPending RentalStatus = "pending"
	RentalStatusPaid    RentalStatus = "paid"
)

// Rental is the merchant's lease-payment obligation. One active record per
// merchant in this scope.
type Rental struct {
	ID              int64            `db:"id"`
	MerchantID      int64            `db:"merchant_id"`
	Amount          decimal.Decimal  `db:"amount"`
	DueDate         time.Time        `db:"due_date"`
	Status          RentalStatus     `db:"status"`
	LeaseStartDate  *time.Time       `db:"lease_start_date"`
	LeaseEndDate    *time.Time       `db:"lease_end_date"`
	SecurityDeposit *decimal.Decimal `db:"security_deposit"`
}
